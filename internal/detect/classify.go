package detect

import (
	"github.com/ashureev/examwatch/internal/domain"
)

// Classifier label constants, matching the classes emitted by the COCO-SSD
// family of models the detector service runs.
const (
	labelPerson    = "person"
	labelCellPhone = "cell phone"
	labelBook      = "book"
	labelLaptop    = "laptop"
)

// Classify maps a single frame's detections to the violation categories
// implicated by that frame. Pure function: no state, no side effects.
//
// A frame with zero persons yields NoFace; a frame with two or more yields
// MultipleFace. The two cannot co-occur. Any number of qualifying
// detections yields a category at most once per frame. Output order is
// stable (domain.Categories order).
func Classify(dets []Detection) []domain.Category {
	persons := 0
	cellPhone := false
	prohibited := false

	for _, d := range dets {
		switch d.Label {
		case labelPerson:
			persons++
		case labelCellPhone:
			cellPhone = true
		case labelBook, labelLaptop:
			prohibited = true
		}
	}

	var cats []domain.Category
	if persons == 0 {
		cats = append(cats, domain.NoFace)
	}
	if persons >= 2 {
		cats = append(cats, domain.MultipleFace)
	}
	if cellPhone {
		cats = append(cats, domain.CellPhone)
	}
	if prohibited {
		cats = append(cats, domain.ProhibitedObject)
	}
	return cats
}
