package simplex

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/lattice/noise"
)

const refEps = 1e-10

type referenceVector struct {
	at   []float64
	want float64
}

func mustNew(t *testing.T, cfg Config) *Noise {
	t.Helper()
	n, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return n
}

func TestReferenceVectors(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		vectors []referenceVector
	}{
		{"fast", Fast, fastVectors},
		{"super", Super, superVectors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustNew(t, Config{Seed: 3301, Kind: tt.kind})
			for _, v := range tt.vectors {
				got := noise.Eval(n, v.at)
				if math.Abs(got-v.want) > refEps {
					t.Errorf("%s%v = %v, want %v", tt.name, v.at, got, v.want)
				}
			}
		})
	}
}

func TestBoundsAllVariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, kind := range []Kind{Fast, Super} {
		for v2 := Classic2D; v2 <= ImproveX; v2++ {
			for v3 := Classic3D; v3 <= ImproveXZ; v3++ {
				for v4 := Classic4D; v4 <= ImproveXYZ; v4++ {
					n := mustNew(t, Config{Seed: int64(v4) * 31, Kind: kind, Variant2D: v2, Variant3D: v3, Variant4D: v4})
					for i := 0; i < 200; i++ {
						c := [4]float64{}
						for j := range c {
							c[j] = (rng.Float64() - 0.5) * 200
						}
						for _, got := range []float64{
							n.Eval1(c[0]),
							n.Eval2(c[0], c[1]),
							n.Eval3(c[0], c[1], c[2]),
							n.Eval4(c[0], c[1], c[2], c[3]),
						} {
							if got < -1-1e-6 || got > 1+1e-6 || math.IsNaN(got) {
								t.Fatalf("%v %v/%v/%v at %v = %v, want [-1, 1]", kind, v2, v3, v4, c, got)
							}
						}
					}
				}
			}
		}
	}
}

func TestEval1IgnoresVariant2D(t *testing.T) {
	classic := mustNew(t, Config{Seed: 9, Kind: Super})
	improved := mustNew(t, Config{Seed: 9, Kind: Super, Variant2D: ImproveX})
	for i := 0; i < 100; i++ {
		x := float64(i)*0.37 - 15
		if classic.Eval1(x) != improved.Eval1(x) {
			t.Fatalf("Eval1(%v) differs with ImproveX", x)
		}
		if classic.Eval1(x) != classic.Eval2(x, 1) {
			t.Fatalf("Eval1(%v) != Eval2(%v, 1)", x, x)
		}
	}
}

func TestVariantsDiffer(t *testing.T) {
	classic := mustNew(t, Config{Seed: 5})
	rotated := mustNew(t, Config{Seed: 5, Variant3D: ImproveXY, Variant4D: ImproveXYZ})
	same3, same4 := 0, 0
	for i := 0; i < 100; i++ {
		x, y, z := float64(i)*0.13+0.1, float64(i)*0.29-3, float64(i)*0.07
		if classic.Eval3(x, y, z) == rotated.Eval3(x, y, z) {
			same3++
		}
		if classic.Eval4(x, y, z, 1.5) == rotated.Eval4(x, y, z, 1.5) {
			same4++
		}
	}
	if same3 > 10 || same4 > 10 {
		t.Errorf("rotated variants match classic too often: 3D %d, 4D %d of 100", same3, same4)
	}
}

func TestSeededMatchesRebuild(t *testing.T) {
	for _, kind := range []Kind{Fast, Super} {
		base := mustNew(t, Config{Seed: 1, Kind: kind})
		other := mustNew(t, Config{Seed: 42, Kind: kind})
		for i := 0; i < 50; i++ {
			x, y, z, w := float64(i)*0.21, float64(i)*-0.33, float64(i)*0.05+2, float64(i)*0.8
			if base.Eval2Seeded(42, x, y) != other.Eval2(x, y) {
				t.Fatalf("%v: Eval2Seeded differs from rebuilt kernel", kind)
			}
			if base.Eval4Seeded(42, x, y, z, w) != other.Eval4(x, y, z, w) {
				t.Fatalf("%v: Eval4Seeded differs from rebuilt kernel", kind)
			}
		}
	}
}

func TestNewRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"kind", Config{Kind: Kind(7)}},
		{"2d", Config{Variant2D: Variant2D(2)}},
		{"3d", Config{Variant3D: Variant3D(-1)}},
		{"4d", Config{Variant4D: Variant4D(5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, noise.ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestParseVariants(t *testing.T) {
	if k, err := ParseKind(" Super "); err != nil || k != Super {
		t.Errorf("ParseKind = %v, %v", k, err)
	}
	if v, err := ParseVariant2D("improve_x"); err != nil || v != ImproveX {
		t.Errorf("ParseVariant2D = %v, %v", v, err)
	}
	if v, err := ParseVariant3D("improve_xz"); err != nil || v != ImproveXZ {
		t.Errorf("ParseVariant3D = %v, %v", v, err)
	}
	if v, err := ParseVariant4D("improve_xyz_improve_xy"); err != nil || v != ImproveXYZImproveXY {
		t.Errorf("ParseVariant4D = %v, %v", v, err)
	}
	if _, err := ParseVariant4D("improve_everything"); !errors.Is(err, noise.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
	if got := ImproveXYImproveZW.String(); got != "improve_xy_improve_zw" {
		t.Errorf("String() = %q", got)
	}
}

func TestCacheBuildsOncePerSeed(t *testing.T) {
	var mu sync.Mutex
	builds := map[int64]int{}
	c := NewCache(func(seed int64) int64 {
		mu.Lock()
		builds[seed]++
		mu.Unlock()
		return seed * 2
	})

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				seed := int64((g + i) % 8)
				if got := c.Get(seed); got != seed*2 {
					t.Errorf("Get(%d) = %d", seed, got)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() != 8 {
		t.Errorf("Len() = %d, want 8", c.Len())
	}
	for seed, n := range builds {
		if n != 1 {
			t.Errorf("seed %d built %d times", seed, n)
		}
	}
}

func TestLegacy(t *testing.T) {
	cache := NewLegacyCache()
	a := NewLegacy(3, cache)
	b := NewLegacy(3, cache)
	ref := opensimplex.New(3)

	for i := 0; i < 100; i++ {
		x, y, z := float64(i)*0.17-4, float64(i)*0.31, float64(-i)*0.09
		if got, want := a.Eval3(x, y, z), ref.Eval3(x, y, z); got != want {
			t.Fatalf("Eval3 = %v, want %v", got, want)
		}
		if a.Eval1(x) != a.Eval2(x, 0) {
			t.Fatalf("Eval1(%v) != Eval2(%v, 0)", x, x)
		}
		if a.Eval2(x, y) != b.Eval2(x, y) {
			t.Fatal("kernels sharing a seed disagree")
		}
		if got, want := a.Eval2Seeded(11, x, y), NewLegacy(11, cache).Eval2(x, y); got != want {
			t.Fatalf("Eval2Seeded = %v, want %v", got, want)
		}
	}
	if cache.Len() != 2 {
		t.Errorf("cache holds %d seeds, want 2", cache.Len())
	}
}

func TestLegacyDefaultCache(t *testing.T) {
	l := NewLegacy(123456, nil)
	if l.cache != DefaultLegacyCache {
		t.Fatal("nil cache did not fall back to DefaultLegacyCache")
	}
	if l.Eval4(1, 2, 3, 4) != opensimplex.New(123456).Eval4(1, 2, 3, 4) {
		t.Error("default cached kernel differs from a fresh one")
	}
}

var fastVectors = []referenceVector{
	{[]float64{0}, 0.09122662991285324},
	{[]float64{-1}, 0},
	{[]float64{1}, 0.8236600756645203},
	{[]float64{-2}, 0.9900658130645752},
	{[]float64{2}, 0.3764711916446686},
	{[]float64{5}, 0.643632709980011},
	{[]float64{-5}, -0.005847126245498657},
	{[]float64{100}, -0.12638747692108154},
	{[]float64{-1000}, -0.3253846764564514},
	{[]float64{24}, 0.4131718873977661},
	{[]float64{0.5}, 0.07858303189277649},
	{[]float64{1.5}, -0.335693895816803},
	{[]float64{2.5}, -0.5249485969543457},
	{[]float64{3}, -0.057522326707839966},
	{[]float64{70.654}, -0.8844292759895325},
	{[]float64{33.14}, 0.07536864280700684},
	{[]float64{10.33}, 0.10475701838731766},
	{[]float64{11}, 0.10142235457897186},
	{[]float64{27.8924}, -0.572257936000824},
	{[]float64{120941.094}, -0.044469915330410004},
	{[]float64{-0.5}, 0.6210112571716309},
	{[]float64{-1.5}, -0.017346646636724472},
	{[]float64{-2.5}, -0.09822678565979004},
	{[]float64{-3}, -0.8629607558250427},
	{[]float64{-70.654}, 0.7764114737510681},
	{[]float64{-33.14}, -0.020128708332777023},
	{[]float64{-10.33}, -0.5316019654273987},
	{[]float64{-11}, 0.7769351005554199},
	{[]float64{-27.8924}, -0.8731068968772888},
	{[]float64{-90.419824}, -0.531134307384491},
	{[]float64{0, 24}, -0.6768718361854553},
	{[]float64{-1, -1000}, -0.5132539868354797},
	{[]float64{1, 100}, -0.06096449866890907},
	{[]float64{-2, -5}, -0.378164142370224},
	{[]float64{2, 5}, -0.2251630425453186},
	{[]float64{5, 2}, 0.8400276899337769},
	{[]float64{-5, -2}, -0.9338159561157227},
	{[]float64{100, 1}, -0.12638747692108154},
	{[]float64{-1000, -1}, 0.5771178603172302},
	{[]float64{24, 0}, 0.8411674499511719},
	{[]float64{0.5, 120941.094}, 0.8305650949478149},
	{[]float64{1.5, 27.8924}, -0.3535725176334381},
	{[]float64{2.5, 11}, 0.10572854429483414},
	{[]float64{3, 10.33}, -0.6466035842895508},
	{[]float64{70.654, 33.14}, -0.8005424737930298},
	{[]float64{33.14, 70.654}, -0.4799640476703644},
	{[]float64{10.33, 3}, -0.7786362767219543},
	{[]float64{11, 2.5}, 0.1523304283618927},
	{[]float64{27.8924, 1.5}, -0.057395100593566895},
	{[]float64{120941.094, 0.5}, 0.2820107936859131},
	{[]float64{-0.5, -90.419824}, 0.1111256331205368},
	{[]float64{-1.5, -27.8924}, 0.14716951549053192},
	{[]float64{-2.5, -11}, -0.8107380867004395},
	{[]float64{-3, -10.33}, 0.6703228950500488},
	{[]float64{-70.654, -33.14}, 0.6750103235244751},
	{[]float64{-33.14, -70.654}, 0.498468816280365},
	{[]float64{-10.33, -3}, -0.8003191947937012},
	{[]float64{-11, -2.5}, 0.5093483924865723},
	{[]float64{-27.8924, -1.5}, -0.16092351078987122},
	{[]float64{-90.419824, -0.5}, 0.34131234884262085},
	{[]float64{0, 24, 0}, 0},
	{[]float64{-1, -1000, -1}, 0},
	{[]float64{1, 100, 1}, 0},
	{[]float64{-2, -5, -2}, 0},
	{[]float64{2, 5, 2}, 0},
	{[]float64{5, 2, 5}, 0},
	{[]float64{-5, -2, -5}, 0},
	{[]float64{100, 1, 100}, 0},
	{[]float64{-1000, -1, -1000}, 0},
	{[]float64{24, 0, 24}, 0},
	{[]float64{0.5, 120941.094, 0.5}, -0.1722334623336792},
	{[]float64{1.5, 27.8924, 1.5}, 0.2508881688117981},
	{[]float64{2.5, 11, 2.5}, 0.04438529536128044},
	{[]float64{3, 10.33, 3}, 0.06225627660751343},
	{[]float64{70.654, 33.14, 70.654}, -0.3077974319458008},
	{[]float64{33.14, 70.654, 33.14}, -0.11053125560283661},
	{[]float64{10.33, 3, 10.33}, 0.6221261024475098},
	{[]float64{11, 2.5, 11}, -0.08446364849805832},
	{[]float64{27.8924, 1.5, 27.8924}, 0.34973227977752686},
	{[]float64{120941.094, 0.5, 120941.094}, -0.4745906591415405},
	{[]float64{-0.5, -90.419824, -0.5}, -0.3545234799385071},
	{[]float64{-1.5, -27.8924, -1.5}, -0.4486323595046997},
	{[]float64{-2.5, -11, -2.5}, -0.05604025721549988},
	{[]float64{-3, -10.33, -3}, 0.17462123930454254},
	{[]float64{-70.654, -33.14, -70.654}, 0.3185797929763794},
	{[]float64{-33.14, -70.654, -33.14}, -0.02876279130578041},
	{[]float64{-10.33, -3, -10.33}, 0.716934084892273},
	{[]float64{-11, -2.5, -11}, 0.5009580850601196},
	{[]float64{-27.8924, -1.5, -27.8924}, 0.7187321782112122},
	{[]float64{-90.419824, -0.5, -90.419824}, 0.3098449110984802},
	{[]float64{0, 24, 0, 24}, -0.2808057367801666},
	{[]float64{-1, -1000, -1, -1000}, 0.7210341691970825},
	{[]float64{1, 100, 1, 100}, -0.5505936145782471},
	{[]float64{-2, -5, -2, -5}, -0.312113493680954},
	{[]float64{2, 5, 2, 5}, 0.29629483819007874},
	{[]float64{5, 2, 5, 2}, 0.6065744161605835},
	{[]float64{-5, -2, -5, -2}, -0.6271781325340271},
	{[]float64{100, 1, 100, 1}, -0.36936548352241516},
	{[]float64{-1000, -1, -1000, -1}, 0.5340601205825806},
	{[]float64{24, 0, 24, 0}, 0.4832538664340973},
	{[]float64{0.5, 120941.094, 0.5, 120941.094}, -0.28054505586624146},
	{[]float64{1.5, 27.8924, 1.5, 27.8924}, -0.13468365371227264},
	{[]float64{2.5, 11, 2.5, 11}, 0.2695182263851166},
	{[]float64{3, 10.33, 3, 10.33}, 0.19629397988319397},
	{[]float64{70.654, 33.14, 70.654, 33.14}, -0.2607949376106262},
	{[]float64{33.14, 70.654, 33.14, 70.654}, 0.24524074792861938},
	{[]float64{10.33, 3, 10.33, 3}, -0.1300586760044098},
	{[]float64{11, 2.5, 11, 2.5}, -0.3162946403026581},
	{[]float64{27.8924, 1.5, 27.8924, 1.5}, -0.4599091112613678},
	{[]float64{120941.094, 0.5, 120941.094, 0.5}, -0.30638226866722107},
	{[]float64{-0.5, -90.419824, -0.5, -90.419824}, -0.12980762124061584},
	{[]float64{-1.5, -27.8924, -1.5, -27.8924}, 0.2358626276254654},
	{[]float64{-2.5, -11, -2.5, -11}, -0.2906792163848877},
	{[]float64{-3, -10.33, -3, -10.33}, -0.1839386373758316},
	{[]float64{-70.654, -33.14, -70.654, -33.14}, 0.2293124794960022},
	{[]float64{-33.14, -70.654, -33.14, -70.654}, 0.050145912915468216},
	{[]float64{-10.33, -3, -10.33, -3}, 0.0678481012582779},
	{[]float64{-11, -2.5, -11, -2.5}, 0.3057078719139099},
	{[]float64{-27.8924, -1.5, -27.8924, -1.5}, -0.42118778824806213},
	{[]float64{-90.419824, -0.5, -90.419824, -0.5}, -0.6885654330253601},
	{[]float64{0.7101849056320707}, 0.0032121390104293823},
	{[]float64{0.574836350385667}, -0.01276049017906189},
	{[]float64{0.9464192094792073}, 0.7242854237556458},
	{[]float64{0.039405954311386604}, 0.01914813369512558},
	{[]float64{0.4864098780914311}, 0.09471499919891357},
	{[]float64{0.4457367367074283}, 0.13507762551307678},
	{[]float64{0.6008140654988429}, -0.03572678565979004},
	{[]float64{0.550376169584217}, 0.01505783200263977},
	{[]float64{0.6580583901495688}, -0.04749578237533569},
	{[]float64{0.9744965039734514}, 0.7853882908821106},
	{[]float64{0.7101849056320707, 0.574836350385667}, -0.08023712038993835},
	{[]float64{0.9464192094792073, 0.039405954311386604}, -0.2110104262828827},
	{[]float64{0.4864098780914311, 0.4457367367074283}, 0.718863308429718},
	{[]float64{0.6008140654988429, 0.550376169584217}, 0.14625802636146545},
	{[]float64{0.6580583901495688, 0.9744965039734514}, -0.20908625423908234},
	{[]float64{0.6300783865329214, 0.848943650191653}, -0.8353022933006287},
	{[]float64{0.35625029673016806, 0.13619253389673736}, -0.2855379581451416},
	{[]float64{0.6074814346030327, 0.9678613587724542}, -0.25620999932289124},
	{[]float64{0.9577601015152503, 0.9564654926139553}, 0.7327575087547302},
	{[]float64{0.8489499734859746, 0.09680449026535276}, -0.4525753855705261},
	{[]float64{0.7101849056320707, 0.574836350385667, 0.9464192094792073}, -0.1908515989780426},
	{[]float64{0.039405954311386604, 0.4864098780914311, 0.4457367367074283}, 0.009686354547739029},
	{[]float64{0.6008140654988429, 0.550376169584217, 0.6580583901495688}, 0.4092363119125366},
	{[]float64{0.9744965039734514, 0.6300783865329214, 0.848943650191653}, -0.6025327444076538},
	{[]float64{0.35625029673016806, 0.13619253389673736, 0.6074814346030327}, -0.45959019660949707},
	{[]float64{0.9678613587724542, 0.9577601015152503, 0.9564654926139553}, -0.34314996004104614},
	{[]float64{0.8489499734859746, 0.09680449026535276, 0.3709693322851644}, 0.08664542436599731},
	{[]float64{0.2620576723220621, 0.7840774822904888, 0.009231772349260536}, -0.09653449803590775},
	{[]float64{0.8087736458178644, 0.16559722400679533, 0.09340002888404408}, 0.5003254413604736},
	{[]float64{0.5903294413910882, 0.9471566138938478, 0.3525301310482255}, 0.20903584361076355},
	{[]float64{0.7101849056320707, 0.574836350385667, 0.9464192094792073, 0.039405954311386604}, 0.03632349893450737},
	{[]float64{0.4864098780914311, 0.4457367367074283, 0.6008140654988429, 0.550376169584217}, 0.013857902027666569},
	{[]float64{0.6580583901495688, 0.9744965039734514, 0.6300783865329214, 0.848943650191653}, 0.09050571918487549},
	{[]float64{0.35625029673016806, 0.13619253389673736, 0.6074814346030327, 0.9678613587724542}, 0.18765738606452942},
	{[]float64{0.9577601015152503, 0.9564654926139553, 0.8489499734859746, 0.09680449026535276}, 0.43003085255622864},
	{[]float64{0.3709693322851644, 0.2620576723220621, 0.7840774822904888, 0.009231772349260536}, 0.036095596849918365},
	{[]float64{0.8087736458178644, 0.16559722400679533, 0.09340002888404408, 0.5903294413910882}, 0.06660716235637665},
	{[]float64{0.9471566138938478, 0.3525301310482255, 0.5697332656335455, 0.987553287784142}, 0.1292322278022766},
	{[]float64{0.3066192974291233, 0.27814078100067885, 0.36546629298342326, 0.3359469223498933}, 0.3158782124519348},
	{[]float64{0.4133804877548868, 0.4538907613519919, 0.2730592802213989, 0.9723300179905568}, -0.2086184322834015},
}

var superVectors = []referenceVector{
	{[]float64{0}, 0.04791662096977234},
	{[]float64{-1}, 0},
	{[]float64{1}, 0.46213239431381226},
	{[]float64{-2}, 0.826111376285553},
	{[]float64{2}, 0.22229008376598358},
	{[]float64{5}, 0.42323756217956543},
	{[]float64{-5}, 0.061045050621032715},
	{[]float64{100}, -0.07309728115797043},
	{[]float64{-1000}, -0.20758962631225586},
	{[]float64{24}, 0.2488023042678833},
	{[]float64{0.5}, 0.03287404775619507},
	{[]float64{1.5}, -0.40316393971443176},
	{[]float64{2.5}, -0.32406777143478394},
	{[]float64{3}, -0.009187083691358566},
	{[]float64{70.654}, -0.5377256274223328},
	{[]float64{33.14}, -0.009266296401619911},
	{[]float64{10.33}, 0.23781780898571014},
	{[]float64{11}, -0.03982660174369812},
	{[]float64{27.8924}, -0.5004363059997559},
	{[]float64{120941.094}, -0.02359459176659584},
	{[]float64{-0.5}, 0.4596991240978241},
	{[]float64{-1.5}, -0.06260839849710464},
	{[]float64{-2.5}, -0.15884044766426086},
	{[]float64{-3}, -0.624020516872406},
	{[]float64{-70.654}, 0.7203847169876099},
	{[]float64{-33.14}, -0.03574826195836067},
	{[]float64{-10.33}, -0.529230535030365},
	{[]float64{-11}, 0.4060392379760742},
	{[]float64{-27.8924}, -0.49960482120513916},
	{[]float64{-90.419824}, -0.4999661445617676},
	{[]float64{0, 24}, -0.4431307017803192},
	{[]float64{-1, -1000}, -0.389212965965271},
	{[]float64{1, 100}, -0.03521071374416351},
	{[]float64{-2, -5}, -0.21760977804660797},
	{[]float64{2, 5}, -0.08066993951797485},
	{[]float64{5, 2}, 0.7684509754180908},
	{[]float64{-5, -2}, -0.8187946677207947},
	{[]float64{100, 1}, -0.07309728115797043},
	{[]float64{-1000, -1}, 0.3237065076828003},
	{[]float64{24, 0}, 0.5011305809020996},
	{[]float64{0.5, 120941.094}, 0.6373153924942017},
	{[]float64{1.5, 27.8924}, -0.41966861486434937},
	{[]float64{2.5, 11}, 0.12527547776699066},
	{[]float64{3, 10.33}, -0.3790988028049469},
	{[]float64{70.654, 33.14}, -0.8151332139968872},
	{[]float64{33.14, 70.654}, -0.46849098801612854},
	{[]float64{10.33, 3}, -0.4745948314666748},
	{[]float64{11, 2.5}, 0.09999164938926697},
	{[]float64{27.8924, 1.5}, 0.017870068550109863},
	{[]float64{120941.094, 0.5}, 0.11193899065256119},
	{[]float64{-0.5, -90.419824}, 0.04836895316839218},
	{[]float64{-1.5, -27.8924}, 0.24394837021827698},
	{[]float64{-2.5, -11}, -0.7819828391075134},
	{[]float64{-3, -10.33}, 0.48371589183807373},
	{[]float64{-70.654, -33.14}, 0.5564604997634888},
	{[]float64{-33.14, -70.654}, 0.43685460090637207},
	{[]float64{-10.33, -3}, -0.515929102897644},
	{[]float64{-11, -2.5}, 0.4618406891822815},
	{[]float64{-27.8924, -1.5}, -0.14966189861297607},
	{[]float64{-90.419824, -0.5}, 0.17607957124710083},
	{[]float64{0, 24, 0}, 0},
	{[]float64{-1, -1000, -1}, 0},
	{[]float64{1, 100, 1}, 0},
	{[]float64{-2, -5, -2}, 0},
	{[]float64{2, 5, 2}, 0},
	{[]float64{5, 2, 5}, 0},
	{[]float64{-5, -2, -5}, 0},
	{[]float64{100, 1, 100}, 0},
	{[]float64{-1000, -1, -1000}, 0},
	{[]float64{24, 0, 24}, 0},
	{[]float64{0.5, 120941.094, 0.5}, -0.1673237383365631},
	{[]float64{1.5, 27.8924, 1.5}, 0.23067103326320648},
	{[]float64{2.5, 11, 2.5}, 0.08926215022802353},
	{[]float64{3, 10.33, 3}, 0.09458504617214203},
	{[]float64{70.654, 33.14, 70.654}, -0.30408617854118347},
	{[]float64{33.14, 70.654, 33.14}, -0.03834269568324089},
	{[]float64{10.33, 3, 10.33}, 0.5151665806770325},
	{[]float64{11, 2.5, 11}, -0.06748110800981522},
	{[]float64{27.8924, 1.5, 27.8924}, 0.1902930587530136},
	{[]float64{120941.094, 0.5, 120941.094}, -0.3809407949447632},
	{[]float64{-0.5, -90.419824, -0.5}, -0.25092098116874695},
	{[]float64{-1.5, -27.8924, -1.5}, -0.3705699145793915},
	{[]float64{-2.5, -11, -2.5}, -0.09150134027004242},
	{[]float64{-3, -10.33, -3}, 0.11592333763837814},
	{[]float64{-70.654, -33.14, -70.654}, 0.22730597853660583},
	{[]float64{-33.14, -70.654, -33.14}, 0.030170833691954613},
	{[]float64{-10.33, -3, -10.33}, 0.5396011471748352},
	{[]float64{-11, -2.5, -11}, 0.5065631866455078},
	{[]float64{-27.8924, -1.5, -27.8924}, 0.6744904518127441},
	{[]float64{-90.419824, -0.5, -90.419824}, 0.222263902425766},
	{[]float64{0, 24, 0, 24}, -0.3807819187641144},
	{[]float64{-1, -1000, -1, -1000}, 0.3426094055175781},
	{[]float64{1, 100, 1, 100}, 0.17619776725769043},
	{[]float64{-2, -5, -2, -5}, 0.21827417612075806},
	{[]float64{2, 5, 2, 5}, -0.21828970313072205},
	{[]float64{5, 2, 5, 2}, 0.32905739545822144},
	{[]float64{-5, -2, -5, -2}, -0.3290903568267822},
	{[]float64{100, 1, 100, 1}, -0.6899905204772949},
	{[]float64{-1000, -1, -1000, -1}, -0.11121580004692078},
	{[]float64{24, 0, 24, 0}, 0.10616745054721832},
	{[]float64{0.5, 120941.094, 0.5, 120941.094}, 0.18348491191864014},
	{[]float64{1.5, 27.8924, 1.5, 27.8924}, -0.0034064073115587234},
	{[]float64{2.5, 11, 2.5, 11}, -0.08497243374586105},
	{[]float64{3, 10.33, 3, 10.33}, -0.36191326379776},
	{[]float64{70.654, 33.14, 70.654, 33.14}, -0.3323332369327545},
	{[]float64{33.14, 70.654, 33.14, 70.654}, 0.2518858015537262},
	{[]float64{10.33, 3, 10.33, 3}, -0.017025096341967583},
	{[]float64{11, 2.5, 11, 2.5}, 0.3706943690776825},
	{[]float64{27.8924, 1.5, 27.8924, 1.5}, -0.4026792049407959},
	{[]float64{120941.094, 0.5, 120941.094, 0.5}, 0.02490839548408985},
	{[]float64{-0.5, -90.419824, -0.5, -90.419824}, -0.47210854291915894},
	{[]float64{-1.5, -27.8924, -1.5, -27.8924}, -0.02859949879348278},
	{[]float64{-2.5, -11, -2.5, -11}, 0.07992710173130035},
	{[]float64{-3, -10.33, -3, -10.33}, 0.3603430688381195},
	{[]float64{-70.654, -33.14, -70.654, -33.14}, 0.3831663131713867},
	{[]float64{-33.14, -70.654, -33.14, -70.654}, -0.2506444752216339},
	{[]float64{-10.33, -3, -10.33, -3}, 0.004889994859695435},
	{[]float64{-11, -2.5, -11, -2.5}, -0.3048502504825592},
	{[]float64{-27.8924, -1.5, -27.8924, -1.5}, 0.4160294532775879},
	{[]float64{-90.419824, -0.5, -90.419824, -0.5}, 0.7139514684677124},
	{[]float64{0.7101849056320707}, 0.10084277391433716},
	{[]float64{0.574836350385667}, 0.03096526861190796},
	{[]float64{0.9464192094792073}, 0.4111748933792114},
	{[]float64{0.039405954311386604}, -0.0034994285088032484},
	{[]float64{0.4864098780914311}, 0.03442114591598511},
	{[]float64{0.4457367367074283}, 0.03796178102493286},
	{[]float64{0.6008140654988429}, 0.03580021858215332},
	{[]float64{0.550376169584217}, 0.02950456738471985},
	{[]float64{0.6580583901495688}, 0.06044808030128479},
	{[]float64{0.9744965039734514}, 0.4411793351173401},
	{[]float64{0.7101849056320707, 0.574836350385667}, -0.047151532024145126},
	{[]float64{0.9464192094792073, 0.039405954311386604}, -0.0307641439139843},
	{[]float64{0.4864098780914311, 0.4457367367074283}, 0.4016909599304199},
	{[]float64{0.6008140654988429, 0.550376169584217}, 0.08458002656698227},
	{[]float64{0.6580583901495688, 0.9744965039734514}, -0.03528216481208801},
	{[]float64{0.6300783865329214, 0.848943650191653}, -0.4286304712295532},
	{[]float64{0.35625029673016806, 0.13619253389673736}, -0.2433299869298935},
	{[]float64{0.6074814346030327, 0.9678613587724542}, -0.08601805567741394},
	{[]float64{0.9577601015152503, 0.9564654926139553}, 0.40843063592910767},
	{[]float64{0.8489499734859746, 0.09680449026535276}, -0.18703405559062958},
	{[]float64{0.7101849056320707, 0.574836350385667, 0.9464192094792073}, -0.31953543424606323},
	{[]float64{0.039405954311386604, 0.4864098780914311, 0.4457367367074283}, 0.04814913123846054},
	{[]float64{0.6008140654988429, 0.550376169584217, 0.6580583901495688}, 0.2605985999107361},
	{[]float64{0.9744965039734514, 0.6300783865329214, 0.848943650191653}, -0.5651201009750366},
	{[]float64{0.35625029673016806, 0.13619253389673736, 0.6074814346030327}, -0.3833615183830261},
	{[]float64{0.9678613587724542, 0.9577601015152503, 0.9564654926139553}, -0.2403629571199417},
	{[]float64{0.8489499734859746, 0.09680449026535276, 0.3709693322851644}, 0.17458677291870117},
	{[]float64{0.2620576723220621, 0.7840774822904888, 0.009231772349260536}, -0.14158158004283905},
	{[]float64{0.8087736458178644, 0.16559722400679533, 0.09340002888404408}, 0.4455273151397705},
	{[]float64{0.5903294413910882, 0.9471566138938478, 0.3525301310482255}, 0.2849099338054657},
	{[]float64{0.7101849056320707, 0.574836350385667, 0.9464192094792073, 0.039405954311386604}, -0.20621246099472046},
	{[]float64{0.4864098780914311, 0.4457367367074283, 0.6008140654988429, 0.550376169584217}, -0.023710500448942184},
	{[]float64{0.6580583901495688, 0.9744965039734514, 0.6300783865329214, 0.848943650191653}, -0.19986195862293243},
	{[]float64{0.35625029673016806, 0.13619253389673736, 0.6074814346030327, 0.9678613587724542}, -0.39490965008735657},
	{[]float64{0.9577601015152503, 0.9564654926139553, 0.8489499734859746, 0.09680449026535276}, -0.39067474007606506},
	{[]float64{0.3709693322851644, 0.2620576723220621, 0.7840774822904888, 0.009231772349260536}, -0.12022848427295685},
	{[]float64{0.8087736458178644, 0.16559722400679533, 0.09340002888404408, 0.5903294413910882}, 0.05974801629781723},
	{[]float64{0.9471566138938478, 0.3525301310482255, 0.5697332656335455, 0.987553287784142}, 0.17156913876533508},
	{[]float64{0.3066192974291233, 0.27814078100067885, 0.36546629298342326, 0.3359469223498933}, 0.4410620629787445},
	{[]float64{0.4133804877548868, 0.4538907613519919, 0.2730592802213989, 0.9723300179905568}, -0.36167842149734497},
}
