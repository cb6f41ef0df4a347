package i18n

import "sitzy/internal/models"

// Seat-position labels per layout. Positions are 1-indexed and match the
// layout's seat count.
var positionLabels = map[models.CarLayout]map[int]map[string]string{
	models.LayoutSedaq: {
		1: {"cs": "Vpředu vlevo", "en": "Front left"},
		2: {"cs": "Vpředu vpravo", "en": "Front right"},
		3: {"cs": "Vzadu vlevo", "en": "Rear left"},
		4: {"cs": "Vzadu vpravo", "en": "Rear right"},
	},
	models.LayoutTrapaq: {
		1: {"cs": "Vpředu vlevo", "en": "Front left"},
		2: {"cs": "Vpředu vpravo", "en": "Front right"},
	},
	models.LayoutPraq: {
		1: {"cs": "Řidič", "en": "Driver"},
		2: {"cs": "Spolujezdec", "en": "Passenger"},
		3: {"cs": "Vzadu vlevo", "en": "Rear left"},
		4: {"cs": "Vzadu uprostřed", "en": "Rear center"},
		5: {"cs": "Vzadu vpravo", "en": "Rear right"},
		6: {"cs": "Třetí řada vlevo", "en": "Third row left"},
		7: {"cs": "Třetí řada vpravo", "en": "Third row right"},
	},
}
