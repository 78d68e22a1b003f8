package main

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCars(t *testing.T) {

	fitCmd := FitCommand()
	fitCmd.SetArgs(strings.Split("-i datasets/cars.train -o /tmp/cars.encoder --categorical-columns color --drop-invariant", " "))
	err := fitCmd.Execute()
	require.NoError(t, err)

	transformCmd := TransformCommand()
	transformCmd.SetArgs(strings.Split("-m /tmp/cars.encoder -i datasets/cars.test -o /tmp/cars.out", " "))
	err = transformCmd.Execute()
	require.NoError(t, err)

	outBytes, err := ioutil.ReadFile("/tmp/cars.out")
	require.NoError(t, err)
	require.Equal(t,
		"color_1,color_2,doors,price\n"+
			"-0.5,-0.3333333333333333,4,11000\n"+
			"0,0.6666666666666666,2,8000\n"+
			"NaN,NaN,4,7000\n",
		string(outBytes))
}

func TestTransformedTrainingOutput(t *testing.T) {

	fitCmd := FitCommand()
	fitCmd.SetArgs(strings.Split("-i datasets/cars.train -o /tmp/cars-full.encoder --transformed-output /tmp/cars-train.out", " "))
	err := fitCmd.Execute()
	require.NoError(t, err)

	outBytes, err := ioutil.ReadFile("/tmp/cars-train.out")
	require.NoError(t, err)
	lines := strings.Split(string(outBytes), "\n")
	require.Equal(t, "color_0,color_1,color_2,doors,price", lines[0])
	require.Equal(t, "1,-0.5,-0.3333333333333333,4,10000", lines[1])
}
