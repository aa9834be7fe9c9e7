package terrain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/haulroute/terrain"
)

// allFlags enumerates every combination of the four terrain flags.
func allFlags() []*terrain.Region {
	var out []*terrain.Region
	for mask := 0; mask < 16; mask++ {
		out = append(out, &terrain.Region{
			Label:      "R",
			Rainforest: mask&1 != 0,
			Mountain:   mask&2 != 0,
			Urban:      mask&4 != 0,
			Risky:      mask&8 != 0,
		})
	}

	return out
}

func TestBuildCosts_PolicyTable(t *testing.T) {
	cases := []struct {
		name       string
		region     terrain.Region
		rail, road float64
	}{
		{"Plain", terrain.Region{}, 0, 0},
		{"Mountain", terrain.Region{Mountain: true}, 400, 200},
		{"Rainforest", terrain.Region{Rainforest: true}, 250, 0},
		{"Urban", terrain.Region{Urban: true}, 100, 0},
		{"MountainBeatsRainforest", terrain.Region{Mountain: true, Rainforest: true}, 400, 200},
		{"RainforestBeatsUrban", terrain.Region{Rainforest: true, Urban: true}, 250, 0},
		{"RiskyOnly", terrain.Region{Risky: true}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.rail, tc.region.RailBuildCost())
			assert.Equal(t, tc.road, tc.region.RoadBuildCost())
		})
	}
}

func TestElectrifiedRail_IsTwiceStandard(t *testing.T) {
	for _, r := range allFlags() {
		assert.Equal(t, 2*r.RailBuildCost(), r.ElectrifiedRailBuildCost(), "region %+v", *r)
	}
}

func TestSpoilage_OnlyRisky(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for _, r := range allFlags() {
		for i := 0; i < 20; i++ {
			p := rng.Float64() * 10000
			want := 0.0
			if r.Risky {
				want = 0.03 * p
			}
			assert.InDelta(t, want, r.SpoilageLossPerTon(p), 1e-9)
		}
	}
}

func TestSecuritySurchargeRate(t *testing.T) {
	assert.Equal(t, 0.15, (&terrain.Region{Risky: true}).SecuritySurchargeRate())
	assert.Zero(t, (&terrain.Region{Mountain: true}).SecuritySurchargeRate())
}

func TestTraversalCost_Additive(t *testing.T) {
	assert.Equal(t, 3.0, (&terrain.Region{}).TraversalCost())
	assert.Equal(t, 11.0, (&terrain.Region{Rainforest: true}).TraversalCost())
	assert.Equal(t, 6.0, (&terrain.Region{Mountain: true}).TraversalCost())
	assert.Equal(t, 7.0, (&terrain.Region{Risky: true}).TraversalCost())
	all := &terrain.Region{Rainforest: true, Mountain: true, Risky: true, Urban: true}
	assert.Equal(t, 18.0, all.TraversalCost())
}

func TestRegion_String(t *testing.T) {
	var hole *terrain.Region
	assert.Equal(t, "<hole>", hole.String())
	assert.Equal(t, "B3(1,2)", terrain.New(1, 2, "B3").String())
}
