package client

// Child is a registered child as returned by the backend.
type Child struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	NUI          string `json:"nui"`
	Birthdate    string `json:"birthdate"` // ISO date, YYYY-MM-DD
	Gender       string `json:"gender"`
	CreationDate string `json:"creationDate"`
}

// ChildPayload is the create/update body for a child.
type ChildPayload struct {
	FullName  string `json:"fullName"`
	NUI       string `json:"nui"`
	Birthdate string `json:"birthdate"`
	Gender    string `json:"gender"`
}

// Evaluator is a registered evaluator with their assigned console user.
type Evaluator struct {
	ID         int64  `json:"id"`
	Speciality string `json:"speciality"`
	FullName   string `json:"fullName"`
	NUI        string `json:"nui"`
	Phone      string `json:"phone"`
	Birthdate  string `json:"birthdate"`
	Gender     string `json:"gender"`
	UserID     int64  `json:"userId"`
}

// EvaluatorPayload is the create/update body for an evaluator.
type EvaluatorPayload struct {
	Speciality string `json:"speciality"`
	FullName   string `json:"fullName"`
	NUI        string `json:"nui"`
	Phone      string `json:"phone"`
	Birthdate  string `json:"birthdate"`
	Gender     string `json:"gender"`
	UserID     int64  `json:"userId"`
}

// User is a console account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Locked   bool   `json:"locked"`
	Disabled bool   `json:"disabled"`
	Role     string `json:"role"`
}

// UserPayload is the create/update body for a console account.
type UserPayload struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email"`
	Locked   *bool  `json:"locked,omitempty"`
	Disabled *bool  `json:"disabled,omitempty"`
	Role     string `json:"role"`
}

// TestItem is one entry of the assessment checklist.
type TestItem struct {
	ID                 int64  `json:"id"`
	DomainID           int64  `json:"domainId"`
	Description        string `json:"description"`
	ReferenceAgeMonths int    `json:"referenceAgeMonths"`
	ItemOrder          int    `json:"itemOrder"`
	DescriptionDomain  string `json:"descriptionDomain,omitempty"`
}

// TestItemPayload is the create/update body for a test item.
type TestItemPayload struct {
	DomainID           int64  `json:"domainId"`
	Description        string `json:"description"`
	ReferenceAgeMonths int    `json:"referenceAgeMonths"`
	ItemOrder          int    `json:"itemOrder"`
}

// EvaluationItem is one evaluated checklist entry inside an evaluation.
type EvaluationItem struct {
	ID                 int64  `json:"id"`
	Task               string `json:"task"`
	Domain             string `json:"domain"`
	Completed          bool   `json:"completed"`
	ReferenceAgeMonths int    `json:"referenceAgeMonths"`
}

// ItemResponse is one pass/fail answer submitted with an evaluation.
type ItemResponse struct {
	ItemID int64 `json:"itemId"`
	Passed bool  `json:"passed"`
}

// EvaluationRequest is the submission body for a scored evaluation. The
// backend computes the authoritative result from it.
type EvaluationRequest struct {
	ChildrenID             int64          `json:"childrenId"`
	ChronologicalAgeMonths int            `json:"chronologicalAgeMonths"`
	Responses              []ItemResponse `json:"responses"`
}

// Evaluation is a stored evaluation as returned by the backend, including
// the server-computed result fields when present.
type Evaluation struct {
	ID                     int64            `json:"id"`
	ApplicationDate        string           `json:"applicationDate"`
	ChronologicalAgeMonths int              `json:"chronologicalAgeMonths"`
	ChildrenID             int64            `json:"childrenId"`
	EvaluatorID            int64            `json:"evaluatorId"`
	Coefficient            float64          `json:"coefficient,omitempty"`
	Classification         string           `json:"classification,omitempty"`
	Observations           string           `json:"observaciones,omitempty"`
	Items                  []EvaluationItem `json:"items"`
	CreationDate           string           `json:"creationDate"`
	TotalMonthsApproved    float64          `json:"totalMonthsApproved,omitempty"`
	ResultYears            string           `json:"resultYears,omitempty"`
	ResultDetail           string           `json:"resultDetail,omitempty"`
}

// EvaluationResult is the scored outcome returned after submitting an
// evaluation.
type EvaluationResult struct {
	EvaluationID        int64   `json:"evaluationId"`
	TotalMonthsApproved float64 `json:"totalMonthsApproved"`
	Coefficient         float64 `json:"coefficient"`
	Classification      string  `json:"classification"`
	ResultYears         string  `json:"resultYears"`
	ResultDetail        string  `json:"resultDetail"`
}

// GlobalResultPayload is the create/update body for a stored global result.
// This endpoint's JSON layout is snake_case, unlike the rest of the API.
type GlobalResultPayload struct {
	TotalMonthsApproved float64 `json:"total_months_approved"`
	Coefficient         float64 `json:"coefficient"`
	ResultYears         string  `json:"result_years"`
	ResultDetail        string  `json:"result_detail"`
	Classification      string  `json:"classification"`
}

// GlobalResult is a stored global result.
type GlobalResult struct {
	GlobalResultPayload
	ID           int64  `json:"id"`
	CreationDate string `json:"creationDate"`
}

// Report is the generated report record for an evaluation.
type Report struct {
	ID                  int64   `json:"id"`
	EvaluationID        int64   `json:"evaluationId"`
	TotalMonthsApproved float64 `json:"totalMonthsApproved"`
	Coefficient         float64 `json:"coefficient"`
	ResultYears         string  `json:"resultYears"`
	ResultDetail        string  `json:"resultDetail"`
	Classification      string  `json:"classification"`
	CreationDate        string  `json:"creationDate"`
}
