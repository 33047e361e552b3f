package cli

import (
	"testing"

	"github.com/mesh-intelligence/herbarium/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlantSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    types.PlantRecord
		wantErr error
		errText string
	}{
		{name: "tree", spec: "10,30,stem,bush", want: types.DefaultPlantRecord()},
		{name: "spaces and case", spec: " 1 , 2 , Stem , LEAVES ", want: types.MustPlantRecord(1, 2, true, false, true, false)},
		{name: "trailing comma", spec: "4,5,bush,", want: types.MustPlantRecord(4, 5, false, false, false, true)},
		{name: "repeated flag", spec: "4,5,bush,bush", want: types.MustPlantRecord(4, 5, false, false, false, true)},
		{name: "too few fields", spec: "10", errText: "want min,max"},
		{name: "bad minimum", spec: "x,30,stem", errText: "minimum height"},
		{name: "bad maximum", spec: "10,y,stem", errText: "maximum height"},
		{name: "unknown flag", spec: "10,30,roots", errText: "unknown flag"},
		{name: "petals without stem", spec: "10,30,petals", wantErr: types.ErrStemRequired},
		{name: "no flags", spec: "10,30", wantErr: types.ErrNotAPlant},
		{name: "negative height", spec: "-1,30,stem", wantErr: types.ErrHeightNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePlantSpec(tt.spec)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}
