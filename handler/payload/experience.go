package payload

type ExperienceResponse struct {
	Version string           `json:"version" yaml:"version"`
	Data    []ExperienceData `json:"data" yaml:"data"`
}

// ExperienceData is one timeline entry. Records carry no identifier; their
// position in Data is the only identity they have.
type ExperienceData struct {
	Title       string   `json:"title" yaml:"title"`
	CompanyName string   `json:"company_name" yaml:"company_name"`
	Img         string   `json:"img" yaml:"img"`
	IconBg      string   `json:"icon_bg" yaml:"icon_bg"`
	Date        string   `json:"date" yaml:"date"`
	Points      []string `json:"points" yaml:"points"`
}
