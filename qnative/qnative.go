/*
qnative.go, part of Quipu



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

//Package qnative computes the fraction of native contacts, Q, of
//conformations in a trajectory against a reference ("native") structure,
//with the smoothed contact indicator of Best, Hummer and Eaton
//(PNAS 110, 17874 (2013)).
package qnative

import (
	"fmt"
	"math"

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/floats"
)

//Above this value the exponential overflows float64 anyway, so the
//sigmoid is saturated to its limit without calling math.Exp.
const expArgMax = 700.0

//A Contact is an unordered pair of heavy atoms, I < J, considered in
//contact in the native conformation. Dist is the distance between the
//two atoms in that conformation.
type Contact struct {
	I    int
	J    int
	Dist float64
}

func dist(coord *v3.Matrix, i, j int, tmp *v3.Matrix) float64 {
	tmp.Sub(coord.VecView(j), coord.VecView(i))
	return tmp.Norm(2)
}

//NativeContacts returns the native contact set of mol in the conformation
//ref: every pair of heavy atoms (any atom with a symbol other than "H")
//separated by more than O.MinSeparation() residues and by less than
//O.Cutoff() in space. The returned slice is in stable enumeration order
//(ascending first index, then second). An empty result is not an error.
func NativeContacts(mol chem.Atomer, ref *v3.Matrix, O *Options) ([]Contact, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if err := O.validate(); err != nil {
		return nil, err
	}
	if mol == nil || ref == nil {
		return nil, fmt.Errorf("qnative: nil molecule or reference coordinates")
	}
	if ref.NVecs() != mol.Len() {
		return nil, fmt.Errorf("qnative: the reference has %d coordinates but the molecule has %d atoms", ref.NVecs(), mol.Len())
	}
	heavy := make([]int, 0, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).Symbol != "H" {
			heavy = append(heavy, i)
		}
	}
	tmp := v3.Zeros(1)
	contacts := make([]Contact, 0, len(heavy))
	for n, i := range heavy {
		for _, j := range heavy[n+1:] {
			sep := mol.Atom(i).MolID - mol.Atom(j).MolID
			if sep < 0 {
				sep *= -1
			}
			if sep <= O.minSeparation {
				continue
			}
			d := dist(ref, i, j, tmp)
			if d < O.cutoff {
				contacts = append(contacts, Contact{I: i, J: j, Dist: d})
			}
		}
	}
	return contacts, nil
}

//FrameQ returns the fraction of the native contacts in contacts that are
//present in the conformation coord. Each contact contributes
//1/(1+exp(beta*(r-lambda*r0))), where r is its distance in coord and r0
//its native distance, so the returned value is in [0,1]. An empty contact
//set scores 0 (the mean over no contacts is defined here as zero).
func FrameQ(coord *v3.Matrix, contacts []Contact, O *Options) float64 {
	if O == nil {
		O = DefaultOptions()
	}
	s := make([]float64, len(contacts))
	return frameQ(coord, contacts, O, s, v3.Zeros(1))
}

//frameQ is FrameQ with caller-provided scratch space, so the trajectory
//loop doesn't allocate per frame.
func frameQ(coord *v3.Matrix, contacts []Contact, O *Options, s []float64, tmp *v3.Matrix) float64 {
	if len(contacts) == 0 {
		return 0
	}
	for k, c := range contacts {
		r := dist(coord, c.I, c.J, tmp)
		s[k] = sigmoid(O.beta * (r - O.lambda*c.Dist))
	}
	return floats.Sum(s) / float64(len(contacts))
}

//sigmoid returns 1/(1+exp(x)), saturating directly to 0 for arguments
//large enough to overflow the exponential.
func sigmoid(x float64) float64 {
	if x > expArgMax {
		return 0
	}
	return 1 / (1 + math.Exp(x))
}

//QTraj scores every frame of traj against the native conformation ref of
//mol, returning one value per scored frame, in frame order. It selects
//the native contacts with NativeContacts and scores with the
//Best-Hummer-Eaton indicator. The trajectory must share the atom topology
//of mol; a mismatch is reported before any distance is computed.
func QTraj(traj chem.Traj, mol chem.Atomer, ref *v3.Matrix, O *Options) ([]float64, error) {
	if O == nil {
		O = DefaultOptions()
	}
	contacts, err := NativeContacts(mol, ref, O)
	if err != nil {
		return nil, err
	}
	return QTrajContacts(traj, mol, contacts, O)
}

//QTrajContacts is QTraj with an externally supplied native contact set
//(for instance, one read from a Go-model contact map). The native
//distances are taken from the Dist field of each contact.
func QTrajContacts(traj chem.Traj, mol chem.Atomer, contacts []Contact, O *Options) ([]float64, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if err := O.validate(); err != nil {
		return nil, err
	}
	if traj == nil || mol == nil {
		return nil, fmt.Errorf("qnative: nil trajectory or molecule")
	}
	if err := checkTopology(traj, mol); err != nil {
		return nil, err
	}
	for _, c := range contacts {
		if c.I < 0 || c.J >= mol.Len() || c.I >= c.J {
			return nil, fmt.Errorf("qnative: contact (%d,%d) out of range for a %d-atom topology", c.I, c.J, mol.Len())
		}
	}
	coord := v3.Zeros(traj.Len())
	s := make([]float64, len(contacts))
	tmp := v3.Zeros(1)
	Q := make([]float64, 0, 100)
	for read := 0; ; read++ {
		err := traj.Next(coord)
		if err != nil {
			if _, ok := err.(chem.LastFrameError); ok {
				break
			}
			return nil, fmt.Errorf("qnative: failed reading frame %d: %v", read, err)
		}
		if read < O.begin || (read-O.begin)%(O.skip+1) != 0 {
			continue
		}
		Q = append(Q, frameQ(coord, contacts, O, s, tmp))
	}
	return Q, nil
}

//checkTopology verifies that the frames of traj can be indexed with atom
//indexes from mol. The atom counts must agree and, if the trajectory
//carries its own topology (a multi-model PDB or XYZ read as a Molecule),
//the residue assignment must agree atom by atom. Coordinate-only formats
//(DCD, XTC) carry no residue table, so only the count is checked there.
func checkTopology(traj chem.Traj, mol chem.Atomer) error {
	if traj.Len() != mol.Len() {
		return fmt.Errorf("qnative: trajectory frames have %d atoms but the native structure has %d", traj.Len(), mol.Len())
	}
	if tm, ok := traj.(chem.Atomer); ok {
		for i := 0; i < mol.Len(); i++ {
			if tm.Atom(i).MolID != mol.Atom(i).MolID {
				return fmt.Errorf("qnative: atom %d belongs to residue %d in the trajectory but to residue %d in the native structure", i, tm.Atom(i).MolID, mol.Atom(i).MolID)
			}
		}
	}
	return nil
}
