package catalog

import (
	"time"

	"goflare.io/storefront/models"
)

const defaultImage = "https://img.medicalexpo.fr/images_me/photo-g/301158-18251063.webp"

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func day(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }

var seedCategories = []models.Category{
	{ID: "A", Name: "Soins Préventifs", CreatedAt: day(1)},
	{ID: "B", Name: "Chirurgie Dentaire", CreatedAt: day(2)},
	{ID: "C", Name: "Orthodontie", CreatedAt: day(3)},
	{ID: "D", Name: "Prothèses", CreatedAt: day(4)},
	{ID: "E", Name: "Services Spécialisés", CreatedAt: day(5)},
}

var seedMarks = []models.Mark{
	{Name: "Premium"},
	{Name: "Standard"},
	{Name: "Basic"},
	{Name: "Luxury"},
}

var seedTags = []models.Tag{
	{Name: "A"},
	{Name: "B"},
	{Name: "C"},
	{Name: "D"},
	{Name: "E"},
}

var seedItems = []models.Product{
	{
		ID:          "1",
		Ref:         "ABD-001",
		Image:       defaultImage,
		Name:        "Blanchiment Dentaire",
		Description: "Traitement de blanchiment professionnel pour un sourire éclatant.",
		Mark:        "Premium",
		Category:    "A",
		Tags:        []string{"A", "B"},
		Price:       100,
		NewPrice:    ptr(80),
		Rating:      ptr(4.8),
		Stock:       intPtr(1),
	},
	{
		ID:          "2",
		Ref:         "ABD-002",
		Image:       defaultImage,
		Name:        "Implant Dentaire",
		Description: "Solution permanente pour dents manquantes.",
		Mark:        "Standard",
		Category:    "B",
		Tags:        []string{"B", "D"},
		Price:       450,
		NewPrice:    ptr(399),
		Rating:      ptr(4.9),
		Stock:       intPtr(8),
	},
	{
		ID:          "3",
		Ref:         "ABD-003",
		Image:       defaultImage,
		Name:        "Orthodontie Invisible",
		Description: "Aligne vos dents discrètement avec des gouttières transparentes.",
		Mark:        "Basic",
		Category:    "C",
		Tags:        []string{"C", "D"},
		Price:       600,
		NewPrice:    ptr(550),
		Rating:      ptr(4.6),
		Stock:       nil,
	},
	{
		ID:          "4",
		Ref:         "ABD-004",
		Image:       defaultImage,
		Name:        "Détartrage",
		Description: "Élimination du tartre pour une hygiène buccale optimale.",
		Mark:        "Luxury",
		Category:    "A",
		Tags:        []string{"A", "C"},
		Price:       70,
		NewPrice:    ptr(50),
		Rating:      ptr(4.7),
		Stock:       intPtr(2),
	},
	{
		ID:          "5",
		Ref:         "ABD-005",
		Image:       defaultImage,
		Name:        "Facette Dentaire",
		Description: "Améliorez votre sourire avec des facettes esthétiques.",
		Mark:        "Premium",
		Category:    "E",
		Tags:        []string{"E", "A"},
		Price:       800,
		NewPrice:    ptr(720),
		Rating:      nil,
		Stock:       intPtr(9),
	},
	{
		ID:          "6",
		Ref:         "ABD-006",
		Image:       defaultImage,
		Name:        "Dévitalisation",
		Description: "Traitement de canal pour dents endommagées.",
		Mark:        "Standard",
		Category:    "C",
		Tags:        []string{"C", "E"},
		Price:       200,
		NewPrice:    ptr(180),
		Rating:      ptr(4.2),
		Stock:       nil,
	},
	{
		ID:          "7",
		Ref:         "ABD-007",
		Image:       defaultImage,
		Name:        "Bridge Dentaire",
		Description: "Remplace les dents manquantes avec un pont fixe.",
		Mark:        "Basic",
		Category:    "B",
		Tags:        []string{"B", "C"},
		Price:       700,
		NewPrice:    ptr(650),
		Rating:      ptr(4.4),
		Stock:       intPtr(3),
	},
	{
		ID:          "8",
		Ref:         "ABD-008",
		Image:       defaultImage,
		Name:        "Couronne Céramique",
		Description: "Protège et restaure les dents abîmées.",
		Mark:        "Luxury",
		Category:    "D",
		Tags:        []string{"D", "A"},
		Price:       500,
		NewPrice:    ptr(450),
		Rating:      ptr(4.8),
		Stock:       intPtr(10),
	},
	{
		ID:          "9",
		Ref:         "ABD-009",
		Image:       defaultImage,
		Name:        "Composite Esthétique",
		Description: "Restaurations dentaires avec résines modernes.",
		Mark:        "Premium",
		Category:    "D",
		Tags:        []string{"D", "E"},
		Price:       120,
		NewPrice:    ptr(100),
		Rating:      ptr(4.3),
		Stock:       nil,
	},
	{
		ID:          "10",
		Ref:         "ABD-010",
		Image:       defaultImage,
		Name:        "Nettoyage Complet",
		Description: "Nettoyage, polissage et fluor pour une bouche saine.",
		Mark:        "Standard",
		Category:    "A",
		Tags:        []string{"A", "C"},
		Price:       90,
		NewPrice:    ptr(75),
		Rating:      nil,
		Stock:       intPtr(4),
	},
	{
		ID:          "11",
		Ref:         "ABD-011",
		Image:       defaultImage,
		Name:        "Radiographie Dentaire",
		Description: "Imagerie numérique pour un diagnostic précis.",
		Mark:        "Basic",
		Category:    "E",
		Tags:        []string{"E", "A"},
		Price:       50,
		NewPrice:    ptr(40),
		Rating:      ptr(4.8),
		Stock:       intPtr(11),
	},
	{
		ID:          "12",
		Ref:         "ABD-012",
		Image:       defaultImage,
		Name:        "Extraction Dentaire",
		Description: "Extraction rapide et sans douleur des dents.",
		Mark:        "Luxury",
		Category:    "C",
		Tags:        []string{"C", "E"},
		Price:       90,
		NewPrice:    ptr(70),
		Rating:      ptr(4.9),
		Stock:       nil,
	},
	{
		ID:          "13",
		Ref:         "ABD-013",
		Image:       defaultImage,
		Name:        "Prothèse Dentaire",
		Description: "Appareil amovible pour remplacer plusieurs dents.",
		Mark:        "Premium",
		Category:    "D",
		Tags:        []string{"D", "E"},
		Price:       300,
		NewPrice:    ptr(280),
		Rating:      ptr(4.6),
		Stock:       intPtr(5),
	},
	{
		ID:          "14",
		Ref:         "ABD-014",
		Image:       defaultImage,
		Name:        "Inlay / Onlay",
		Description: "Alternative aux couronnes pour dents partiellement abîmées.",
		Mark:        "Standard",
		Category:    "C",
		Tags:        []string{"C", "E"},
		Price:       250,
		NewPrice:    ptr(220),
		Rating:      ptr(4.7),
		Stock:       intPtr(12),
	},
	{
		ID:          "15",
		Ref:         "ABD-015",
		Image:       defaultImage,
		Name:        "Traitement des gencives",
		Description: "Traitement des infections gingivales chroniques.",
		Mark:        "Basic",
		Category:    "B",
		Tags:        []string{"B", "C"},
		Price:       150,
		NewPrice:    ptr(120),
		Rating:      nil,
		Stock:       nil,
	},
	{
		ID:          "16",
		Ref:         "ABD-016",
		Image:       defaultImage,
		Name:        "Sceau Fissure",
		Description: "Prévention des caries sur les dents permanentes.",
		Mark:        "Luxury",
		Category:    "A",
		Tags:        []string{"A", "C"},
		Price:       80,
		NewPrice:    ptr(60),
		Rating:      ptr(4.2),
		Stock:       intPtr(6),
	},
	{
		ID:          "17",
		Ref:         "ABD-017",
		Image:       defaultImage,
		Name:        "Urgence Dentaire",
		Description: "Prise en charge rapide des douleurs aiguës.",
		Mark:        "Premium",
		Category:    "E",
		Tags:        []string{"E", "A"},
		Price:       100,
		NewPrice:    ptr(90),
		Rating:      ptr(4.4),
		Stock:       intPtr(13),
	},
	{
		ID:          "18",
		Ref:         "ABD-018",
		Image:       defaultImage,
		Name:        "Réhabilitation Totale",
		Description: "Restauration complète de l'esthétique et fonction dentaire.",
		Mark:        "Standard",
		Category:    "E",
		Tags:        []string{"E", "B"},
		Price:       1500,
		NewPrice:    ptr(1350),
		Rating:      ptr(4.8),
		Stock:       nil,
	},
	{
		ID:          "19",
		Ref:         "ABD-019",
		Image:       defaultImage,
		Name:        "Anesthésie Locale",
		Description: "Gestion indolore des traitements dentaires.",
		Mark:        "Basic",
		Category:    "A",
		Tags:        []string{"A", "B"},
		Price:       30,
		NewPrice:    ptr(25),
		Rating:      ptr(4.3),
		Stock:       intPtr(7),
	},
	{
		ID:          "20",
		Ref:         "ABD-020",
		Image:       defaultImage,
		Name:        "Consultation",
		Description: "Examen initial et conseils personnalisés.",
		Mark:        "Luxury",
		Category:    "A",
		Tags:        []string{"A", "C"},
		Price:       60,
		NewPrice:    ptr(50),
		Rating:      nil,
		Stock:       intPtr(14),
	},
	{
		ID:          "21",
		Ref:         "ABD-021",
		Image:       defaultImage,
		Name:        "Chirurgie Buccale",
		Description: "Chirurgies mineures pour problèmes dentaires complexes.",
		Mark:        "Premium",
		Category:    "C",
		Tags:        []string{"C", "D"},
		Price:       400,
		NewPrice:    ptr(380),
		Rating:      ptr(4.8),
		Stock:       nil,
	},
	{
		ID:          "22",
		Ref:         "ABD-022",
		Image:       defaultImage,
		Name:        "Couronne Provisoire",
		Description: "Protéger temporairement vos dents après traitement.",
		Mark:        "Standard",
		Category:    "D",
		Tags:        []string{"D", "A"},
		Price:       150,
		NewPrice:    ptr(130),
		Rating:      ptr(4.9),
		Stock:       intPtr(8),
	},
	{
		ID:          "23",
		Ref:         "ABD-023",
		Image:       defaultImage,
		Name:        "Blanchiment Laser",
		Description: "Blanchiment rapide et efficace avec technologie laser.",
		Mark:        "Basic",
		Category:    "A",
		Tags:        []string{"A", "B"},
		Price:       250,
		NewPrice:    ptr(200),
		Rating:      ptr(4.6),
		Stock:       intPtr(15),
	},
	{
		ID:          "24",
		Ref:         "ABD-024",
		Image:       defaultImage,
		Name:        "Gouttières Nocturnes",
		Description: "Prévention du bruxisme durant la nuit.",
		Mark:        "Luxury",
		Category:    "C",
		Tags:        []string{"C", "E"},
		Price:       120,
		NewPrice:    ptr(100),
		Rating:      ptr(4.7),
		Stock:       nil,
	},
	{
		ID:          "25",
		Ref:         "ABD-025",
		Image:       defaultImage,
		Name:        "Nettoyage Air Flow",
		Description: "Élimination douce de la plaque et colorations.",
		Mark:        "Premium",
		Category:    "B",
		Tags:        []string{"B", "C"},
		Price:       110,
		NewPrice:    ptr(95),
		Rating:      nil,
		Stock:       intPtr(9),
	},
}
