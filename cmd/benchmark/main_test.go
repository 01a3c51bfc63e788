package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSizes(t *testing.T) {
	assert.Equal(t, []int{10, 50, 100}, parseSizes("10,50,100"))
	assert.Equal(t, []int{3}, parseSizes(" 3 "))
	assert.Equal(t, []int{20, 40}, parseSizes("20, 40,"))
	assert.Empty(t, parseSizes(""))
}

func TestGetConfigs(t *testing.T) {
	configs := getConfigs([]int{10, 20}, []int{5}, 12, 3, false)

	assert.Len(t, configs, 6)
	assert.Equal(t, 10, configs[0].PopulationSize)
	assert.Equal(t, uint64(3), configs[2].Seed)
	assert.Equal(t, 20, configs[3].PopulationSize)
	assert.Equal(t, 12, configs[5].TotalSlots)
}

func TestMeasure(t *testing.T) {
	tests := getTests("")
	configs := getConfigs([]int{10}, []int{5}, 10, 1, false)

	result := measure(tests[0], configs[0])

	assert.Equal(t, sampleTestName, result.Test.Name)
	assert.LessOrEqual(t, result.Generations, 5)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.Len(t, toRecord(result), 12)
}
