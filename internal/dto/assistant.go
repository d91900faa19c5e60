package dto

type ProductQARequest struct {
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	UserQuestion       string `json:"userQuestion"`
	Category           string `json:"category"`
}

type ProductQAResponse struct {
	Answer            string   `json:"answer"`
	Confidence        float64  `json:"confidence"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

type AISearchRequest struct {
	Query string `json:"query"`
}

type AISearchResponse struct {
	ProductNames []string `json:"productNames"`
}

// CartItem is a loosely structured cart entry. Clients send arbitrary item
// records; only the name aliases and category matter here, everything else is
// ignored on decode.
type CartItem struct {
	Name        string `json:"name"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
}

// Label resolves the display name for a cart item: `name`, then
// `productName`, then a literal "item" placeholder.
func (i CartItem) Label() string {
	if i.Name != "" {
		return i.Name
	}
	if i.ProductName != "" {
		return i.ProductName
	}
	return "item"
}

type RecommendRequest struct {
	Cart []CartItem `json:"cart"`
}

type RecommendResponse struct {
	ProductNames []string `json:"productNames"`
}

// ErrorResponse is the uniform failure body: callers distinguish only
// success vs an HTTP error with a detail message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
