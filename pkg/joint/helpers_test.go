package joint_test

import "boltjoint/pkg/domain"

// nortonFastener is a 5/16-18 UNC SAE grade 5 bolt with 1 in of shank and
// 2 in of thread inside a 3 in grip (Norton example 15-3).
func nortonFastener() domain.Fastener {
	return domain.Fastener{
		NominalDiameter:  5.0 / 16,
		ThreadsPerLength: 18,
		MinorDiameter:    0.24033,
		TotalLength:      3.5,
		ThreadedLength:   2.5,
		GripLength:       3,
		Modulus:          30e6,
		ProofStrength:    80000,
		YieldStrength:    92000,
		UltimateStrength: 120000,
		EnduranceLimit:   25726,
	}
}

func steelMember() domain.Member {
	return domain.Member{
		Modulus:       30e6,
		OuterDiameter: 1,
		Thickness:     3,
	}
}

// m16Fastener is an ISO M16x2 class 8.8 bolt in SI units.
func m16Fastener() domain.Fastener {
	return domain.Fastener{
		NominalDiameter:  0.016,
		Pitch:            0.002,
		TotalLength:      0.08,
		ThreadedLength:   0.038,
		GripLength:       0.05,
		Modulus:          207e9,
		ProofStrength:    600e6,
		YieldStrength:    640e6,
		UltimateStrength: 830e6,
		EnduranceLimit:   129e6,
	}
}
