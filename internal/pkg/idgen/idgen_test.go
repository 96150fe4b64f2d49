package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("doc")
	assert.Equal(t, "doc_1", gen.Generate())
	assert.Equal(t, "doc_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestUUID(t *testing.T) {
	gen := idgen.NewUUID("actor")
	a, b := gen.Generate(), gen.Generate()
	assert.True(t, strings.HasPrefix(a, "actor_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
