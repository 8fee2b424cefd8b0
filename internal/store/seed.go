package store

import "context"

// sampleCatalog is the demo inventory loaded when seeding is enabled.
var sampleCatalog = []Product{
	{
		Name:        "Adobe Photoshop 2024 (Лицензия)",
		Category:    "Программное обеспечение",
		Description: "Профессиональный графический редактор для дизайнеров",
		Price:       23990,
		Stock:       120,
		FileSize:    "2.1 GB",
		LicenseType: "Пожизненная",
	},
	{
		Name:        "Курс по React: Полное руководство",
		Category:    "Онлайн-курсы",
		Description: "Исчерпывающий курс по React с нуля",
		Price:       8900,
		Stock:       300,
		FileSize:    "15.7 GB",
		LicenseType: "Пожизненный доступ",
	},
	{
		Name:        "Фотобанк Премиум: 5000+ фото",
		Category:    "Стоковые медиа",
		Description: "Коллекция профессиональных фотографий",
		Price:       12990,
		Stock:       45,
		FileSize:    "8.5 GB",
		LicenseType: "Коммерческая",
	},
	{
		Name:        "Ноутбук ASUS ROG",
		Category:    "Ноутбуки",
		Description: "Игровой ноутбук с RTX 4060, 16GB RAM",
		Price:       120000,
		Stock:       5,
		FileSize:    "Not specified",
		LicenseType: "Standard",
	},
	{
		Name:        "Наушники Sony WH-1000XM5",
		Category:    "Аудио",
		Description: "Беспроводные, шумоподавление",
		Price:       29990,
		Stock:       12,
		FileSize:    "Not specified",
		LicenseType: "Standard",
	},
}

// Seed inserts the sample catalog through the store so ids and timestamps
// are assigned the usual way.
func Seed(ctx context.Context, s ProductStore) error {
	for _, p := range sampleCatalog {
		if _, err := s.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
