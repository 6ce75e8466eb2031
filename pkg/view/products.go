package view

// ProductCardVM is one card in the dashboard grid.
type ProductCardVM struct {
	ID          int
	Title       string
	Description string
	Price       string
	Brand       string
	Category    string
	Thumbnail   string
	EditURL     string
	DeleteURL   string
}

// ProductFormVM pre-fills the create/edit modal.
type ProductFormVM struct {
	ID          int
	Title       string
	Description string
	Price       string // masked, e.g. "$ 99.99"
	Brand       string
	Category    string
}

// PageLink is one entry in the pagination bar.
type PageLink struct {
	Label    string
	URL      string
	Current  bool
	Ellipsis bool
}

// DashboardVM is everything the dashboard page renders from.
type DashboardVM struct {
	Title       string
	Products    []ProductCardVM
	SearchTerm  string
	SortField   string
	CurrentPage int
	TotalPages  int
	TotalItems  int
	Pages       []PageLink
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	NewURL      string
	AlertError  string
	IsModalOpen bool
	ModalIsEdit bool
	ModalAction string
	ModalForm   ProductFormVM
	FormErrors  map[string]string
	CancelURL   string
	Flash       *Flash
}
