// Package design provides coefficient designers for the recursive filters
// in dsp/filter/blockiir.
//
// [Gaussian] approximates a Gaussian blur of standard deviation sigma with a
// first or second order section applied in both directions
// ([blockiir.Bidirectional]).
package design
