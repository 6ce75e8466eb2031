package handlers

// normalizeReturnTo validates and sanitizes the return_to parameter.
// Open redirect protection: only relative paths are accepted.
func normalizeReturnTo(s string) string {
	if s == "" {
		return ""
	}
	if len(s) < 1 || s[0] != '/' {
		return ""
	}
	// block protocol-relative targets like "//evil.com"
	if len(s) >= 2 && s[0:2] == "//" {
		return ""
	}
	// block embedded schemes like "http://", "https://"
	if containsScheme(s) {
		return ""
	}
	return s
}

func containsScheme(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == ':' && s[i+1] == '/' && s[i+2] == '/' {
			return true
		}
	}
	return false
}
