package product

const imageParams = "?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=800"

// DefaultCatalog is the product list loaded at process start.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "SonicWave Pro Max",
			Price:       "399.00",
			Description: "Flagship model with premium noise cancellation and superior sound quality",
			Image:       "https://images.unsplash.com/photo-1583394838336-acd977736f90" + imageParams,
			Category:    "Premium",
			Stock:       50,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "SonicWave Gaming Elite",
			Price:       "299.00",
			Description: "Ultimate gaming experience with 7.1 surround sound and RGB lighting",
			Image:       "https://images.unsplash.com/photo-1599669454699-248893623440" + imageParams,
			Category:    "Gaming",
			Stock:       30,
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "SonicWave Studio",
			Price:       "199.00",
			Description: "Professional studio-grade monitoring headphones for audio production",
			Image:       "https://images.unsplash.com/photo-1484704849700-f032a568e944" + imageParams,
			Category:    "Studio",
			Stock:       25,
			Featured:    false,
		},
		{
			ID:          "4",
			Name:        "SonicWave Wireless",
			Price:       "249.00",
			Description: "True wireless freedom with premium sound quality and long battery life",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e" + imageParams,
			Category:    "Wireless",
			Stock:       40,
			Featured:    true,
		},
		{
			ID:          "5",
			Name:        "SonicWave Sport",
			Price:       "149.00",
			Description: "Built for active lifestyles with sweat resistance and secure fit",
			Image:       "https://images.unsplash.com/photo-1606400082777-ef05f3c5cde1" + imageParams,
			Category:    "Sport",
			Stock:       35,
			Featured:    false,
		},
		{
			ID:          "6",
			Name:        "SonicWave Classic",
			Price:       "99.00",
			Description: "Timeless design with modern performance and exceptional comfort",
			Image:       "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb" + imageParams,
			Category:    "Classic",
			Stock:       60,
			Featured:    false,
		},
	}
}
