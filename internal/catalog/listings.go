package catalog

import "github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"

// seedListings returns the raw catalog literals, before any derived data is
// attached. IDs are assigned by Build from catalog position, so they are left
// empty here. Price/PriceValue and Duration/DurationDays must stay consistent.
func seedListings() []domain.TripListing {
	return []domain.TripListing{
		{
			Title:         "Inca Trail Trek to Machu Picchu",
			Host:          "Andes Collective",
			Location:      "Cusco",
			Country:       "Peru",
			Continent:     "South America",
			Image:         "/images/trips/inca-trail.jpg",
			Description:   "Four days on the classic Inca Trail, camping under the Andes and arriving at the Sun Gate for sunrise over Machu Picchu.",
			Tags:          []string{"hiking", "history", "mountains"},
			Highlights:    []string{"Sun Gate sunrise", "Wiñay Wayna terraces", "Porter-supported camping"},
			Included:      []string{"Permits", "Camping gear", "All meals", "Bilingual guide"},
			BestFor:       []string{"hikers", "history buffs"},
			Category:      domain.CategoryAdventure,
			ActivityLevel: domain.ActivityHigh,
			GroupSize:     domain.GroupSmall,
			Price:         "$1,150",
			PriceValue:    1150,
			Duration:      "4 days",
			DurationDays:  4,
			Rating:        4.9,
			ReviewCount:   412,
		},
		{
			Title:         "Kyoto Temples & Tea Ceremony Week",
			Host:          "Sakura Journeys",
			Location:      "Kyoto",
			Country:       "Japan",
			Continent:     "Asia",
			Image:         "/images/trips/kyoto-temples.jpg",
			Description:   "A slow week through Kyoto's temple districts with a private tea ceremony, zen garden mornings, and an overnight in a traditional ryokan.",
			Tags:          []string{"temples", "tea", "tradition"},
			Highlights:    []string{"Fushimi Inari at dawn", "Private tea ceremony", "Ryokan stay with kaiseki dinner"},
			Included:      []string{"Accommodation", "Rail passes", "Ceremony fees"},
			BestFor:       []string{"culture lovers", "slow travelers"},
			Category:      domain.CategoryCultural,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupCouples,
			Price:         "$2,400",
			PriceValue:    2400,
			Duration:      "7 days",
			DurationDays:  7,
			Rating:        4.8,
			ReviewCount:   289,
		},
		{
			Title:         "Bali Yoga & Surf Retreat",
			Host:          "Salt & Stillness",
			Location:      "Canggu",
			Country:       "Indonesia",
			Continent:     "Asia",
			Image:         "/images/trips/bali-retreat.jpg",
			Description:   "Morning yoga, afternoon surf lessons, and plant-based meals at a jungle-edge villa ten minutes from the beach.",
			Tags:          []string{"yoga", "surf", "wellness"},
			Highlights:    []string{"Daily vinyasa sessions", "Beginner surf coaching", "Rice-terrace cycling day"},
			Included:      []string{"Villa accommodation", "All classes", "Breakfast and dinner"},
			BestFor:       []string{"solo travelers", "beginners"},
			Category:      domain.CategoryWellness,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupSoloFriendly,
			Price:         "$980",
			PriceValue:    980,
			Duration:      "6 days",
			DurationDays:  6,
			Rating:        4.7,
			ReviewCount:   356,
		},
		{
			Title:         "Serengeti Great Migration Safari",
			Host:          "Mara Horizons",
			Location:      "Serengeti",
			Country:       "Tanzania",
			Continent:     "Africa",
			Image:         "/images/trips/serengeti-safari.jpg",
			Description:   "Five nights tracking the wildebeest migration in open 4x4s, with tented-camp stays inside the park and a Ngorongoro Crater day.",
			Tags:          []string{"safari", "wildlife", "photography"},
			Highlights:    []string{"River-crossing viewpoints", "Ngorongoro Crater descent", "Night drives"},
			Included:      []string{"Park fees", "Tented camps", "All game drives", "Full board"},
			BestFor:       []string{"photographers", "wildlife lovers"},
			Category:      domain.CategoryNature,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupSmall,
			Price:         "$4,600",
			PriceValue:    4600,
			Duration:      "6 days",
			DurationDays:  6,
			Rating:        4.9,
			ReviewCount:   198,
		},
		{
			Title:         "Santorini Sunset Sailing Escape",
			Host:          "Aegean Blue Charters",
			Location:      "Santorini",
			Country:       "Greece",
			Continent:     "Europe",
			Image:         "/images/trips/santorini-sailing.jpg",
			Description:   "Three caldera days aboard a skippered catamaran: hot springs, hidden coves, and dinner anchored under the Oia sunset.",
			Tags:          []string{"sailing", "islands", "romance"},
			Highlights:    []string{"Oia sunset at anchor", "Volcanic hot springs swim", "Red Beach snorkeling"},
			Included:      []string{"Skipper", "Cabin accommodation", "Breakfast", "Snorkel gear"},
			BestFor:       []string{"couples", "honeymooners"},
			Category:      domain.CategoryRomantic,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupCouples,
			Price:         "$1,750",
			PriceValue:    1750,
			Duration:      "3 days",
			DurationDays:  3,
			Rating:        4.8,
			ReviewCount:   274,
		},
		{
			Title:         "Patagonia W Trek Expedition",
			Host:          "Torres Trails",
			Location:      "Torres del Paine",
			Country:       "Chile",
			Continent:     "South America",
			Image:         "/images/trips/patagonia-w.jpg",
			Description:   "The full W circuit with refugio stays: granite towers at first light, the Francés Valley, and the Grey Glacier wall.",
			Tags:          []string{"trekking", "glaciers", "mountains"},
			Highlights:    []string{"Base of the Towers sunrise", "Grey Glacier boardwalks", "Refugio-to-refugio hiking"},
			Included:      []string{"Refugio bunks", "Park entry", "Meals on trail", "Guide"},
			BestFor:       []string{"hikers", "adventure seekers"},
			Category:      domain.CategoryAdventure,
			ActivityLevel: domain.ActivityExtreme,
			GroupSize:     domain.GroupSmall,
			Price:         "$2,900",
			PriceValue:    2900,
			Duration:      "8 days",
			DurationDays:  8,
			Rating:        4.9,
			ReviewCount:   167,
		},
		{
			Title:         "Maldives Overwater Luxury Week",
			Host:          "Atoll Escapes",
			Location:      "Baa Atoll",
			Country:       "Maldives",
			Continent:     "Asia",
			Image:         "/images/trips/maldives-luxury.jpg",
			Description:   "Seven nights in an overwater villa with a private plunge pool, house-reef snorkeling, and a sandbank dinner for two.",
			Tags:          []string{"luxury", "beach", "snorkeling"},
			Highlights:    []string{"Overwater villa with pool", "Manta ray season dives", "Private sandbank dinner"},
			Included:      []string{"Seaplane transfers", "Half board", "Spa credit"},
			BestFor:       []string{"couples", "luxury travelers"},
			Category:      domain.CategoryLuxury,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupCouples,
			Price:         "$8,900",
			PriceValue:    8900,
			Duration:      "7 days",
			DurationDays:  7,
			Rating:        4.9,
			ReviewCount:   143,
		},
		{
			Title:         "Costa Rica Family Jungle Adventure",
			Host:          "Pura Vida Tours",
			Location:      "La Fortuna",
			Country:       "Costa Rica",
			Continent:     "North America",
			Image:         "/images/trips/costa-rica-family.jpg",
			Description:   "Sloth spotting, hanging bridges, hot springs, and a beginner-friendly rafting day — built for kids from age six.",
			Tags:          []string{"jungle", "wildlife", "family"},
			Highlights:    []string{"Arenal hanging bridges", "Sloth sanctuary visit", "Class II family rafting"},
			Included:      []string{"Lodge stay", "All activities", "Breakfasts", "Naturalist guide"},
			BestFor:       []string{"families", "first-timers"},
			Category:      domain.CategoryFamily,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupLarge,
			Price:         "$1,480",
			PriceValue:    1480,
			Duration:      "5 days",
			DurationDays:  5,
			Rating:        4.7,
			ReviewCount:   321,
		},
		{
			Title:         "Alps Ski Touring Week",
			Host:          "Whiteline Guides",
			Location:      "Chamonix",
			Country:       "France",
			Continent:     "Europe",
			Image:         "/images/trips/alps-ski.jpg",
			Description:   "Guided ski touring out of Chamonix with avalanche training, hut nights, and a Vallée Blanche descent to finish.",
			Tags:          []string{"skiing", "mountains", "winter"},
			Highlights:    []string{"Vallée Blanche descent", "Mountain hut overnights", "Avalanche safety course"},
			Included:      []string{"IFMGA guide", "Hut half board", "Safety equipment"},
			BestFor:       []string{"skiers", "adrenaline seekers"},
			Category:      domain.CategorySports,
			ActivityLevel: domain.ActivityExtreme,
			GroupSize:     domain.GroupSmall,
			Price:         "$3,200",
			PriceValue:    3200,
			Duration:      "6 days",
			DurationDays:  6,
			Rating:        4.8,
			ReviewCount:   119,
		},
		{
			Title:         "Lisbon & Algarve Budget Roadtrip",
			Host:          "Tagus Trails",
			Location:      "Lisbon",
			Country:       "Portugal",
			Continent:     "Europe",
			Image:         "/images/trips/portugal-roadtrip.jpg",
			Description:   "A hostel-based week from Lisbon's miradouros down the coast to Lagos, with surf stops and a Benagil caves kayak.",
			Tags:          []string{"roadtrip", "surf", "hostels"},
			Highlights:    []string{"Benagil sea caves kayak", "Sintra day trip", "Algarve cliff walks"},
			Included:      []string{"Hostel beds", "Minibus transport", "Two surf lessons"},
			BestFor:       []string{"backpackers", "young travelers"},
			Category:      domain.CategoryBudget,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupLarge,
			Price:         "$640",
			PriceValue:    640,
			Duration:      "7 days",
			DurationDays:  7,
			Rating:        4.5,
			ReviewCount:   502,
		},
		{
			Title:         "Iceland Ring Road Photo Expedition",
			Host:          "Northern Lens",
			Location:      "Reykjavik",
			Country:       "Iceland",
			Continent:     "Europe",
			Image:         "/images/trips/iceland-ring.jpg",
			Description:   "The full ring road in ten days chasing waterfalls, ice caves, and the aurora, with nightly editing sessions led by a pro.",
			Tags:          []string{"photography", "waterfalls", "aurora"},
			Highlights:    []string{"Jökulsárlón ice beach", "Aurora hunts", "Highland super-jeep day"},
			Included:      []string{"4x4 transport", "Guesthouses", "Photo tuition"},
			BestFor:       []string{"photographers", "nature lovers"},
			Category:      domain.CategoryNature,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupSmall,
			Price:         "$3,850",
			PriceValue:    3850,
			Duration:      "10 days",
			DurationDays:  10,
			Rating:        4.8,
			ReviewCount:   211,
		},
		{
			Title:         "Marrakech Souks & Sahara Camp",
			Host:          "Atlas & Dune",
			Location:      "Marrakech",
			Country:       "Morocco",
			Continent:     "Africa",
			Image:         "/images/trips/morocco-sahara.jpg",
			Description:   "Medina food walks and riad nights, then over the Atlas to a desert camp at Erg Chebbi for camel treks and drum circles.",
			Tags:          []string{"desert", "markets", "food"},
			Highlights:    []string{"Erg Chebbi dune camp", "Jemaa el-Fnaa food walk", "Atlas pass drive"},
			Included:      []string{"Riad and camp stays", "Drivers", "Most meals"},
			BestFor:       []string{"culture lovers", "foodies"},
			Category:      domain.CategoryCultural,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupAny,
			Price:         "$1,290",
			PriceValue:    1290,
			Duration:      "6 days",
			DurationDays:  6,
			Rating:        4.6,
			ReviewCount:   387,
		},
		{
			Title:         "Great Barrier Reef Dive Liveaboard",
			Host:          "Coral Sea Expeditions",
			Location:      "Cairns",
			Country:       "Australia",
			Continent:     "Oceania",
			Image:         "/images/trips/gbr-liveaboard.jpg",
			Description:   "Four days and eleven dives on the outer reef from a liveaboard, including two night dives and a Cod Hole visit.",
			Tags:          []string{"diving", "reef", "ocean"},
			Highlights:    []string{"Cod Hole giant potato cod", "Night dives", "Eleven-dive package"},
			Included:      []string{"Cabin", "All dives and tanks", "Full board"},
			BestFor:       []string{"divers", "ocean lovers"},
			Category:      domain.CategorySports,
			ActivityLevel: domain.ActivityHigh,
			GroupSize:     domain.GroupSoloFriendly,
			Price:         "$1,980",
			PriceValue:    1980,
			Duration:      "4 days",
			DurationDays:  4,
			Rating:        4.7,
			ReviewCount:   233,
		},
		{
			Title:         "Tuscany Slow Food & Wine Week",
			Host:          "Cypress Lane",
			Location:      "Val d'Orcia",
			Country:       "Italy",
			Continent:     "Europe",
			Image:         "/images/trips/tuscany-food.jpg",
			Description:   "A farmhouse week of market cooking classes, Brunello cellar tastings, and long lunches between hill towns.",
			Tags:          []string{"food", "wine", "countryside"},
			Highlights:    []string{"Brunello di Montalcino tastings", "Hands-on pasta classes", "Pienza cheese farm visit"},
			Included:      []string{"Farmhouse stay", "Classes and tastings", "Daily breakfast, four dinners"},
			BestFor:       []string{"foodies", "couples"},
			Category:      domain.CategoryCultural,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupCouples,
			Price:         "$2,650",
			PriceValue:    2650,
			Duration:      "7 days",
			DurationDays:  7,
			Rating:        4.8,
			ReviewCount:   176,
		},
		{
			Title:         "Thai Islands Budget Hopper",
			Host:          "Longtail Collective",
			Location:      "Krabi",
			Country:       "Thailand",
			Continent:     "Asia",
			Image:         "/images/trips/thai-islands.jpg",
			Description:   "Ten days island-hopping Krabi to Koh Tao by longtail and ferry: beach bungalows, snorkel days, and one open-water dive.",
			Tags:          []string{"islands", "beach", "snorkeling"},
			Highlights:    []string{"Railay sunset climb viewpoint", "Koh Tao intro dive", "Four-island longtail day"},
			Included:      []string{"Bungalow beds", "Ferries", "Snorkel gear"},
			BestFor:       []string{"backpackers", "solo travelers"},
			Category:      domain.CategoryBudget,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupSoloFriendly,
			Price:         "$720",
			PriceValue:    720,
			Duration:      "10 days",
			DurationDays:  10,
			Rating:        4.5,
			ReviewCount:   468,
		},
		{
			Title:         "New Zealand South Island Adrenaline Tour",
			Host:          "Kiwi Rush",
			Location:      "Queenstown",
			Country:       "New Zealand",
			Continent:     "Oceania",
			Image:         "/images/trips/nz-adrenaline.jpg",
			Description:   "Bungy, canyon swing, jet boat, and a Milford Sound kayak, strung along the South Island's big-scenery roads.",
			Tags:          []string{"adrenaline", "bungy", "fjords"},
			Highlights:    []string{"Nevis bungy", "Milford Sound kayak", "Shotover jet boat"},
			Included:      []string{"Activity passes", "Coach transport", "Hostel twin rooms"},
			BestFor:       []string{"adrenaline seekers", "young travelers"},
			Category:      domain.CategoryAdventure,
			ActivityLevel: domain.ActivityExtreme,
			GroupSize:     domain.GroupLarge,
			Price:         "$2,150",
			PriceValue:    2150,
			Duration:      "8 days",
			DurationDays:  8,
			Rating:        4.7,
			ReviewCount:   295,
		},
		{
			Title:         "Amalfi Coast Wellness Retreat",
			Host:          "Limoncello Wellness",
			Location:      "Positano",
			Country:       "Italy",
			Continent:     "Europe",
			Image:         "/images/trips/amalfi-wellness.jpg",
			Description:   "Cliffside yoga decks, Path of the Gods walks, sea swims, and Mediterranean cooking in a converted monastery.",
			Tags:          []string{"yoga", "coast", "wellness"},
			Highlights:    []string{"Path of the Gods hike", "Sunrise yoga over the sea", "Monastery stay"},
			Included:      []string{"Accommodation", "All classes", "Breakfast and lunch"},
			BestFor:       []string{"wellness seekers", "solo travelers"},
			Category:      domain.CategoryWellness,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupSmall,
			Price:         "$2,380",
			PriceValue:    2380,
			Duration:      "5 days",
			DurationDays:  5,
			Rating:        4.8,
			ReviewCount:   154,
		},
		{
			Title:         "Zanzibar Beach & Spice Escape",
			Host:          "Swahili Shores",
			Location:      "Nungwi",
			Country:       "Tanzania",
			Continent:     "Africa",
			Image:         "/images/trips/zanzibar-beach.jpg",
			Description:   "White-sand days on Nungwi beach with a Stone Town history walk, spice farm tour, and a sunset dhow cruise.",
			Tags:          []string{"beach", "spices", "history"},
			Highlights:    []string{"Sunset dhow cruise", "Spice farm tour", "Stone Town walk"},
			Included:      []string{"Beach hotel", "Tours", "Breakfast"},
			BestFor:       []string{"beach lovers", "couples"},
			Category:      domain.CategoryBeach,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupAny,
			Price:         "$1,340",
			PriceValue:    1340,
			Duration:      "6 days",
			DurationDays:  6,
			Rating:        4.6,
			ReviewCount:   241,
		},
		{
			Title:         "Canadian Rockies Winter Wonderland",
			Host:          "Alpenglow North",
			Location:      "Banff",
			Country:       "Canada",
			Continent:     "North America",
			Image:         "/images/trips/banff-winter.jpg",
			Description:   "Frozen-lake walks, ice climbing taster, dog sledding, and hot springs under the peaks of Banff and Lake Louise.",
			Tags:          []string{"winter", "mountains", "family"},
			Highlights:    []string{"Johnston Canyon icewalk", "Dog sledding", "Banff hot springs"},
			Included:      []string{"Hotel", "All activities", "Park pass"},
			BestFor:       []string{"families", "winter lovers"},
			Category:      domain.CategoryFamily,
			ActivityLevel: domain.ActivityModerate,
			GroupSize:     domain.GroupLarge,
			Price:         "$1,890",
			PriceValue:    1890,
			Duration:      "5 days",
			DurationDays:  5,
			Rating:        4.7,
			ReviewCount:   188,
		},
		{
			Title:         "Seychelles Private Island Indulgence",
			Host:          "Indian Ocean Collection",
			Location:      "Praslin",
			Country:       "Seychelles",
			Continent:     "Africa",
			Image:         "/images/trips/seychelles-luxury.jpg",
			Description:   "Five nights split between Praslin and a private-island lodge: granite-boulder beaches, giant tortoises, and a personal butler.",
			Tags:          []string{"luxury", "islands", "beach"},
			Highlights:    []string{"Anse Lazio beach day", "Private island transfer by helicopter", "Vallée de Mai palms"},
			Included:      []string{"Butler service", "Helicopter transfers", "Full board"},
			BestFor:       []string{"luxury travelers", "honeymooners"},
			Category:      domain.CategoryLuxury,
			ActivityLevel: domain.ActivityLow,
			GroupSize:     domain.GroupCouples,
			Price:         "$11,200",
			PriceValue:    11200,
			Duration:      "5 days",
			DurationDays:  5,
			Rating:        4.9,
			ReviewCount:   87,
		},
	}
}
