package models

type EntrepreneurProfile struct {
	UserID      string `json:"userId"`
	StartupName string `json:"startupName"`
	Domain      string `json:"domain"`
	IdeaSummary string `json:"ideaSummary"`
	Stage       string `json:"stage,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
}

type FreelancerProfile struct {
	UserID     string `json:"userId"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Portfolio  string `json:"portfolio"`
	Bio        string `json:"bio"`
}
