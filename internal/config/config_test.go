package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	return Params{
		N: 100, Inserts: 0.34, Removals: 0.33, Lookups: 0.33, Preload: 0.5,
		Scaling: Problem, Datastruct: DSList, MinThreads: 1, MaxThreads: 4,
		MapLoadFactor: 4, Types: []string{"coarsegrain"},
	}
}

func TestValidateAcceptsGoodParams(t *testing.T) {
	require.NoError(t, validParams().Validate())
}

func TestValidateRejectsBadMixSum(t *testing.T) {
	p := validParams()
	p.Inserts = 0.9
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to ~1.0")
}

func TestValidateRejectsUnknownType(t *testing.T) {
	p := validParams()
	p.Types = []string{"bogus"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestValidateRejectsInvertedThreadRange(t *testing.T) {
	p := validParams()
	p.MinThreads = 8
	p.MaxThreads = 2
	require.Error(t, p.Validate())
}

func TestParseScalingMode(t *testing.T) {
	m, err := ParseScalingMode("memory")
	require.NoError(t, err)
	assert.Equal(t, Memory, m)

	_, err = ParseScalingMode("bogus")
	assert.Error(t, err)
}
