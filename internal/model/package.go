package model

// SubscriptionPackage is an immutable catalog entry. Packages are static
// configuration, never persisted. Price is in minor currency units (kopecks).
type SubscriptionPackage struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameUA        string   `json:"name_ua"`
	Description   string   `json:"description"`
	DescriptionUA string   `json:"description_ua"`
	Price         int      `json:"price"`
	DurationDays  int      `json:"duration_days"`
	Features      []string `json:"features"`
	FeaturesUA    []string `json:"features_ua"`
	Popular       bool     `json:"popular"`
}
