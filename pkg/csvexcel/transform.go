package csvexcel

import "github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"

// Transform applies the optional transpose. Without it the table is
// returned unchanged.
func Transform(t *models.Table, opts Options) *models.Table {
	if !opts.Transpose {
		return t
	}
	return t.Transpose()
}
