package advice

// ClassLabel identifies one of the panel conditions the classifier can emit.
type ClassLabel string

const (
	BirdDrop         ClassLabel = "Bird-drop"
	Clean            ClassLabel = "Clean"
	Dusty            ClassLabel = "Dusty"
	ElectricalDamage ClassLabel = "Electrical-damage"
	PhysicalDamage   ClassLabel = "Physical-Damage"
	SnowCovered      ClassLabel = "Snow-Covered"
)

// labels is the model output order: index i of a score vector maps to labels[i].
var labels = []ClassLabel{
	BirdDrop, Clean, Dusty, ElectricalDamage, PhysicalDamage, SnowCovered,
}

// Entry holds the guidance text returned alongside a prediction.
type Entry struct {
	Recommendations []string
	Tips            []string
}

var defaultEntry = Entry{
	Recommendations: []string{"No recommendations"},
	Tips:            []string{"No tips"},
}

var entries = map[ClassLabel]Entry{
	BirdDrop: {
		Recommendations: []string{
			"Regular cleaning of the solar panels is recommended.",
			"Install bird deterrent systems to reduce the chances of droppings.",
		},
		Tips: []string{
			"Consider setting up ultrasonic bird repellents to prevent birds from approaching.",
			"Use automated cleaning systems for frequent bird activity zones.",
		},
	},
	Clean: {
		Recommendations: []string{
			"No action required. The panels are in good condition.",
			"Regular monitoring to ensure continued efficiency.",
		},
		Tips: []string{
			"Set a schedule for regular visual inspections even if panels look clean.",
			"Implement smart monitoring systems to track panel performance.",
		},
	},
	Dusty: {
		Recommendations: []string{
			"Clean the panels to ensure optimal performance.",
			"Consider installing protective screens to reduce dust accumulation.",
		},
		Tips: []string{
			"Use water-efficient cleaning techniques to conserve resources while maintaining cleanliness.",
			"Install panels at a slight tilt to reduce dust buildup over time.",
		},
	},
	ElectricalDamage: {
		Recommendations: []string{
			"Contact a certified technician to inspect the electrical system.",
			"Do not attempt to repair electrical damage without professional assistance.",
		},
		Tips: []string{
			"Perform regular electrical inspections to catch minor issues early.",
			"Keep the area around electrical components clean and dry to avoid shorts.",
		},
	},
	PhysicalDamage: {
		Recommendations: []string{
			"Inspect the panels for cracks or breaks.",
			"Consider replacing or repairing damaged panels to avoid energy losses.",
		},
		Tips: []string{
			"Install protective barriers around panels to avoid future physical damage.",
			"Use high-quality tempered glass panels for increased durability.",
		},
	},
	SnowCovered: {
		Recommendations: []string{
			"Remove snow from the panels to restore energy generation.",
			"Install snow guards to prevent heavy accumulation.",
		},
		Tips: []string{
			"Use non-abrasive tools or warm water to clear snow without damaging the panels.",
			"Install heated cables to melt snow in colder climates.",
		},
	},
}

// Labels returns the class labels in model output order.
func Labels() []ClassLabel {
	out := make([]ClassLabel, len(labels))
	copy(out, labels)
	return out
}

// Lookup returns the guidance for label. Labels outside the known set get the
// default entry, so Lookup is total.
func Lookup(label ClassLabel) Entry {
	if e, ok := entries[label]; ok {
		return e
	}
	return defaultEntry
}
