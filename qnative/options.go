/*
options.go, part of Quipu



LICENSE

Copyright (c) 2024 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>


This program, including its documentation,
is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License version 2.0 as
published by the Free Software Foundation.

This program and its documentation is distributed in the hope that
it will be useful, but WITHOUT ANY WARRANTY; without even the
implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR
PURPOSE.  See the GNU General Public License for more details.

You should have received a copy of the GNU General
Public License along with this program.  If not, see
<http://www.gnu.org/licenses/>.

*/

package qnative

import "fmt"

//Options contains the parameters for the native-contact selection and for
//the Best-Hummer-Eaton smoothing, plus options controlling which frames of
//a trajectory are scored.
type Options struct {
	beta          float64 //sharpness of the sigmoid, in 1/length
	lambda        float64 //tolerance multiplier for the native distance
	cutoff        float64 //maximum native-state distance for a contact
	minSeparation int     //pairs closer in sequence than this (inclusive) are excluded
	begin         int
	skip          int
}

//DefaultOptions returns the Best-Hummer-Eaton parameters for coordinates
//in nm (i.e. for Gromacs trajectories): beta 50 nm^-1, lambda 1.8,
//native cutoff 0.45 nm, and exclusion of pairs separated by 3 residues
//or less.
func DefaultOptions() *Options {
	r := new(Options)
	r.beta = 50
	r.lambda = 1.8
	r.cutoff = 0.45
	r.minSeparation = 3
	return r
}

//DefaultAngstromOptions returns the same parameters as DefaultOptions,
//but for coordinates in A (i.e. for PDB references and DCD trajectories).
func DefaultAngstromOptions() *Options {
	r := DefaultOptions()
	r.beta = 5
	r.cutoff = 4.5
	return r
}

//Returns the sigmoid sharpness, in inverse length units,
//and sets it to a new value, if given.
func (O *Options) Beta(b ...float64) float64 {
	if len(b) > 0 && b[0] > 0 {
		O.beta = b[0]
	}
	return O.beta
}

//Returns the tolerance multiplier applied to each native distance,
//and sets it to a new value, if given.
func (O *Options) Lambda(l ...float64) float64 {
	if len(l) > 0 && l[0] > 0 {
		O.lambda = l[0]
	}
	return O.lambda
}

//Returns the maximum native-state distance for a pair to count as
//a contact, and sets it to a new value, if given.
func (O *Options) Cutoff(c ...float64) float64 {
	if len(c) > 0 && c[0] > 0 {
		O.cutoff = c[0]
	}
	return O.cutoff
}

//Returns the minimum residue separation (exclusive) for a pair to be
//eligible as a contact, and sets it to a new value, if given.
func (O *Options) MinSeparation(s ...int) int {
	if len(s) > 0 && s[0] >= 0 {
		O.minSeparation = s[0]
	}
	return O.minSeparation
}

//Returns the first frame of the trajectory to score,
//and sets it to a new value, if given.
func (O *Options) Begin(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.begin = n[0]
	}
	return O.begin
}

//Returns the number of frames skipped between scored frames,
//and sets it to a new value, if given.
func (O *Options) Skip(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.skip = n[0]
	}
	return O.skip
}

//validate rejects parameter combinations for which the contact
//definition is meaningless. It is called by the entry points before
//any distance is computed.
func (O *Options) validate() error {
	if O.cutoff <= 0 {
		return fmt.Errorf("qnative: the native cutoff must be positive, got %v", O.cutoff)
	}
	if O.beta <= 0 {
		return fmt.Errorf("qnative: beta must be positive, got %v", O.beta)
	}
	if O.lambda <= 0 {
		return fmt.Errorf("qnative: the tolerance multiplier must be positive, got %v", O.lambda)
	}
	if O.minSeparation < 0 {
		return fmt.Errorf("qnative: the minimum residue separation can't be negative, got %d", O.minSeparation)
	}
	if O.begin < 0 || O.skip < 0 {
		return fmt.Errorf("qnative: begin and skip can't be negative, got %d and %d", O.begin, O.skip)
	}
	return nil
}
