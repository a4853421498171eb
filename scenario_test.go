package cascade_test

import (
	"os"
	"testing"

	"github.com/delaneyj/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type propagationScenario struct {
	Name              string `yaml:"name"`
	Shape             string `yaml:"shape"`
	Depth             int    `yaml:"depth"`
	Pushes            []int  `yaml:"pushes"`
	WantTerminalFires int    `yaml:"wantTerminalFires"`
	WantStageFires    int    `yaml:"wantStageFires"`
}

func TestPropagationScenarios(t *testing.T) {
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []propagationScenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			src := cascade.NewSource(0)
			stageFires := 0
			stage := func(v int) int {
				stageFires++
				return v + 1
			}

			var sig cascade.Signal[int]
			switch sc.Shape {
			case "chain":
				sig = cascade.From(src)
				for i := 0; i < sc.Depth; i++ {
					sig = cascade.Map(stage, sig)
				}
			case "diamond":
				root := cascade.From(src)
				sig = cascade.Map2(func(x, y int) int { return x + y },
					cascade.Map(stage, root), cascade.Map(stage, root))
			case "lazy":
				sig = cascade.Lazy(cascade.Map(stage, cascade.From(src)))
			case "buffered":
				sig = cascade.Buffered(cascade.Map(stage, cascade.From(src)))
			default:
				t.Fatalf("unknown shape %q", sc.Shape)
			}

			terminalFires := 0
			_, err := cascade.Sink(sig, func(int) error {
				terminalFires++
				return nil
			})
			require.NoError(t, err)

			for _, v := range sc.Pushes {
				require.NoError(t, src.Push(v))
			}
			assert.Equal(t, sc.WantTerminalFires, terminalFires, "terminal fires")
			assert.Equal(t, sc.WantStageFires, stageFires, "stage fires")
		})
	}
}
