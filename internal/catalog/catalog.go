// Package catalog holds the fixed set of purchasable subscription packages.
// The catalog is configuration, not state: it is defined at compile time and
// never mutated after startup.
package catalog

import "transportpro/internal/model"

var packages = []model.SubscriptionPackage{
	{
		ID:            "basic",
		Name:          "Basic",
		NameUA:        "Базовий",
		Description:   "Perfect for getting started",
		DescriptionUA: "Ідеально для початку",
		Price:         29900, // 299 UAH
		DurationDays:  30,
		Features:      []string{"1 vehicle listing", "Basic search visibility", "Email support"},
		FeaturesUA:    []string{"1 оголошення", "Базова видимість у пошуку", "Email підтримка"},
		Popular:       false,
	},
	{
		ID:            "professional",
		Name:          "Professional",
		NameUA:        "Професійний",
		Description:   "Best for active drivers",
		DescriptionUA: "Найкраще для активних водіїв",
		Price:         59900, // 599 UAH
		DurationDays:  30,
		Features:      []string{"5 vehicle listings", "Priority search visibility", "Phone support", "Analytics dashboard"},
		FeaturesUA:    []string{"5 оголошень", "Пріоритетна видимість", "Телефонна підтримка", "Аналітика"},
		Popular:       true,
	},
	{
		ID:            "enterprise",
		Name:          "Enterprise",
		NameUA:        "Корпоративний",
		Description:   "For transport companies",
		DescriptionUA: "Для транспортних компаній",
		Price:         149900, // 1499 UAH
		DurationDays:  30,
		Features:      []string{"Unlimited vehicles", "Top search placement", "24/7 support", "API access", "Custom branding"},
		FeaturesUA:    []string{"Безліміт оголошень", "Топ пошуку", "Підтримка 24/7", "API доступ", "Власний брендінг"},
		Popular:       false,
	},
}

// Packages returns all purchasable packages in display order.
func Packages() []model.SubscriptionPackage {
	return packages
}

// Get returns the package with the given id, or nil if it does not exist.
func Get(id string) *model.SubscriptionPackage {
	for i := range packages {
		if packages[i].ID == id {
			return &packages[i]
		}
	}
	return nil
}
