package hashing

import "testing"

func TestHashReference(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"1D", Hash1(1729, 3), 1948885066},
		{"2D", Hash2(1729, 3, -5), -1409279533},
		{"3D", Hash3(0, 1, 2, 3), 61098615},
		{"4D", Hash4(-7, 10, -20, 30, -40), 1211571120},
		{"2D wide seed", Hash2(1<<40, 123456789, -987654321), 1381065340},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestValueReference(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"origin", Value1(0, 0), 0},
		{"1D", Value1(1729, 3), 0.24051928520202637},
		{"2D", Value2(1729, 3, -5), 0.1418619859032333},
		{"3D", Value3(0, 1, 2, 3), 0.6820964813232422},
		{"4D", Value4(-7, 10, -20, 30, -40), -0.0656538656912744},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestValueRange(t *testing.T) {
	for seed := int64(-3); seed <= 3; seed++ {
		for x := int64(-50); x <= 50; x++ {
			for y := int64(-5); y <= 5; y++ {
				v := Value2(seed, x, y)
				if v < -1 || v >= 1 {
					t.Fatalf("Value2(%d, %d, %d) = %v outside [-1, 1)", seed, x, y, v)
				}
			}
		}
	}
}

func TestHashSeedSensitivity(t *testing.T) {
	same := 0
	for x := int64(0); x < 1000; x++ {
		if Hash3(1, x, 2*x, -x) == Hash3(2, x, 2*x, -x) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("%d of 1000 hashes ignore the seed", same)
	}
}
