package terrain

// RailBuildCost returns the standard-rail build cost in millions.
// Mountain takes precedence over rainforest, rainforest over urban.
func (r *Region) RailBuildCost() float64 {
	switch {
	case r.Mountain:
		return MountainRailCost
	case r.Rainforest:
		return RainforestRailCost
	case r.Urban:
		return UrbanRailCost
	default:
		return 0
	}
}

// ElectrifiedRailBuildCost is always ElectrificationFactor × RailBuildCost.
func (r *Region) ElectrifiedRailBuildCost() float64 {
	return ElectrificationFactor * r.RailBuildCost()
}

// RoadBuildCost returns the road build cost in millions. Only mountains need
// new road construction.
func (r *Region) RoadBuildCost() float64 {
	if r.Mountain {
		return MountainRoadCost
	}

	return 0
}

// TraversalCost returns the additive topology-only cost of entering r.
// The result is never below BaseTraversal+RegulatoryTraversal.
func (r *Region) TraversalCost() float64 {
	c := BaseTraversal + RegulatoryTraversal
	if r.Rainforest {
		c += RainforestTraversal
	}
	if r.Mountain {
		c += MountainTraversal
	}
	if r.Risky {
		c += RiskyTraversal
	}

	return c
}

// SpoilageLossPerTon returns the expected loss per ton at the given price.
func (r *Region) SpoilageLossPerTon(price float64) float64 {
	if !r.Risky {
		return 0
	}

	return SpoilageRate * price
}

// SecuritySurchargeRate returns the fraction of operating cost per ton
// charged for private security in r.
func (r *Region) SecuritySurchargeRate() float64 {
	if !r.Risky {
		return 0
	}

	return SecurityRate
}
