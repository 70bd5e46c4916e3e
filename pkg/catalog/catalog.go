package catalog

import (
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Product is immutable reference data. Prices are whole rupees; fractional
// amounts do not occur in the catalog.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Material    string   `json:"material"`
	Region      string   `json:"region"`
	InStock     bool     `json:"in_stock"`
	Featured    bool     `json:"featured"`
	Bestseller  bool     `json:"bestseller"`
	NewArrival  bool     `json:"new_arrival"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
}

var products = []Product{
	{
		ID: "p-001", Slug: "terracotta-long-neck-vase", Name: "Terracotta Long-Neck Vase",
		Description: "Hand-thrown terracotta vase with a burnished long neck, fired in an open kiln.",
		Price: 1450, Category: "pottery", Material: "terracotta", Region: "Kutch",
		InStock: true, Featured: true, Bestseller: true,
		Image: "/images/products/terracotta-long-neck-vase.jpg",
	},
	{
		ID: "p-002", Slug: "indigo-block-print-quilt", Name: "Indigo Block-Print Quilt",
		Description: "Double-layer cotton quilt block-printed with natural indigo by a family workshop.",
		Price: 3200, Category: "textiles", Material: "cotton", Region: "Jaipur",
		InStock: true, Featured: true,
		Image: "/images/products/indigo-block-print-quilt.jpg",
	},
	{
		ID: "p-003", Slug: "brass-peacock-oil-lamp", Name: "Brass Peacock Oil Lamp",
		Description: "Cast brass oil lamp with a peacock finial, polished by hand.",
		Price: 2100, Category: "brassware", Material: "brass", Region: "Moradabad",
		InStock: true, Bestseller: true,
		Image: "/images/products/brass-peacock-oil-lamp.jpg",
	},
	{
		ID: "p-004", Slug: "jute-coil-storage-basket", Name: "Jute Coil Storage Basket",
		Description: "Coil-stitched jute basket with leather handles, sized for throws and toys.",
		Price: 850, Category: "basketry", Material: "jute", Region: "Midnapore",
		InStock: true,
		Image: "/images/products/jute-coil-storage-basket.jpg",
	},
	{
		ID: "p-005", Slug: "channapatna-lacquer-toy-set", Name: "Channapatna Lacquer Toy Set",
		Description: "Set of five turned-wood toys finished with vegetable-dye lacquer.",
		Price: 1150, Category: "woodwork", Material: "ivory wood", Region: "Channapatna",
		InStock: true, NewArrival: true,
		Image: "/images/products/channapatna-lacquer-toy-set.jpg",
	},
	{
		ID: "p-006", Slug: "kutch-mirror-work-cushion", Name: "Kutch Mirror-Work Cushion Cover",
		Description: "Hand-embroidered cushion cover with traditional shisha mirror work.",
		Price: 780, Category: "textiles", Material: "cotton", Region: "Kutch",
		InStock: true, Bestseller: true,
		Image: "/images/products/kutch-mirror-work-cushion.jpg",
	},
	{
		ID: "p-007", Slug: "blue-pottery-serving-bowl", Name: "Blue Pottery Serving Bowl",
		Description: "Quartz-bodied serving bowl glazed in classic Jaipur blue florals.",
		Price: 1650, Category: "pottery", Material: "quartz ceramic", Region: "Jaipur",
		InStock: true, Featured: true, NewArrival: true,
		Image: "/images/products/blue-pottery-serving-bowl.jpg",
	},
	{
		ID: "p-008", Slug: "handloom-cotton-throw", Name: "Handloom Cotton Throw",
		Description: "Loom-woven cotton throw in undyed natural stripes, soft-washed.",
		Price: 1800, Category: "textiles", Material: "cotton", Region: "Maheshwar",
		InStock: true, Bestseller: true,
		Image: "/images/products/handloom-cotton-throw.jpg",
	},
	{
		ID: "p-009", Slug: "dhokra-elephant-figurine", Name: "Dhokra Elephant Figurine",
		Description: "Lost-wax cast bell-metal elephant in the Bastar dhokra tradition.",
		Price: 2400, Category: "brassware", Material: "bell metal", Region: "Bastar",
		InStock: true,
		Image: "/images/products/dhokra-elephant-figurine.jpg",
	},
	{
		ID: "p-010", Slug: "banana-fiber-table-runner", Name: "Banana Fiber Table Runner",
		Description: "Table runner woven from banana fiber yarn with a cotton border.",
		Price: 950, Category: "basketry", Material: "banana fiber", Region: "Madurai",
		InStock: false,
		Image: "/images/products/banana-fiber-table-runner.jpg",
	},
	{
		ID: "p-011", Slug: "walnut-wood-jewelry-box", Name: "Walnut Wood Jewelry Box",
		Description: "Hand-carved walnut box with chinar-leaf relief and a velvet lining.",
		Price: 2750, Category: "woodwork", Material: "walnut", Region: "Srinagar",
		InStock: true, NewArrival: true,
		Image: "/images/products/walnut-wood-jewelry-box.jpg",
	},
	{
		ID: "p-012", Slug: "silver-filigree-earrings", Name: "Silver Filigree Earrings",
		Description: "Feather-light tarakasi filigree earrings in sterling silver.",
		Price: 1950, Category: "jewelry", Material: "silver", Region: "Cuttack",
		InStock: true, Featured: true,
		Image: "/images/products/silver-filigree-earrings.jpg",
	},
}

// Products returns the static catalog in canonical order. Callers must not
// mutate the returned slice.
func Products() []Product {
	return products
}

func BySlug(slug string) (Product, error) {
	for _, p := range products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func ByID(id string) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func Featured() []Product    { return filter(func(p Product) bool { return p.Featured }) }
func Bestsellers() []Product { return filter(func(p Product) bool { return p.Bestseller }) }
func NewArrivals() []Product { return filter(func(p Product) bool { return p.NewArrival }) }

func ByCategory(category string) []Product {
	return filter(func(p Product) bool { return p.Category == category })
}

func filter(keep func(Product) bool) []Product {
	var out []Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
