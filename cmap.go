/*
cmap.go, part of Quipu



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

package main

import (
	"fmt"
	"strconv"
	"strings"

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
	"github.com/rmera/scu"

	"github.com/rmera/quipu/qnative"
)

func IsContiguous(MolID1, MolID2, limit int, chain1, chain2 string) bool {
	dif := MolID1 - MolID2
	if dif < 0 {
		dif *= -1
	}
	if chain1 == chain2 && dif <= limit {
		return true
	}
	return false
}

func contactIsSymmetric(j int, set []qnative.Contact, molids [][2]int) bool {
	for i := range set {
		if i == j {
			continue
		}
		if molids[j][0] == molids[i][1] && molids[j][1] == molids[i][0] {
			return true
		}
	}
	return false
}

func isinArray(test [2]int, set [][2]int) bool {
	t := test
	for _, v := range set {
		if (t[0] == v[0] && t[1] == v[1]) || (t[0] == v[1] && t[1] == v[0]) {
			return true
		}

	}
	return false

}

//ContactMapRead reads a Cieplak-style Go-model contact map (the rCSU
//server format) and returns the listed residue pairs as a native contact
//set of CA-CA pairs. The native distance of each contact is taken from
//the conformation ref, not from the distance column of the map, so it is
//in the same units as the coordinates. Contacts between residues of the
//same chain separated by exclude residues or less are left out, as are
//duplicated pairs; rCSU-only terms are only kept if the map also lists
//the symmetric pair (the original rule by Poma et al).
func ContactMapRead(mol chem.Atomer, ref *v3.Matrix, mapname string, exclude int) ([]qnative.Contact, error) {
	inp, err := scu.NewMustReadFile(mapname)
	if err != nil {
		return nil, fmt.Errorf("quipu: can't open the contact map %s: %v", mapname, err)
	}
	defer inp.Close()
	tmp := v3.Zeros(1)
	set := make([]qnative.Contact, 0, 150)
	rcsuOnly := make([]bool, 0, 150)
	molids := make([][2]int, 0, 150)
	reading := false
	for i := inp.Next(); i != "EOF"; i = inp.Next() {
		if strings.Contains(i, "    I1  AA  C I(PDB)    I2  AA  C I(PDB)    DISTANCE       CMs    rCSU    aSurf    rSurf    nSurf") {
			inp.Next() //skip a line. The file should definitely not end here, so, if this is EOF, we'll let it panic on the next round
			reading = true
			continue
		}
		if reading && i == "\n" {
			break
		}
		if !reading {
			continue
		}
		line := strings.Fields(i)
		l := len(line)
		ov, err := strconv.Atoi(line[l-8])
		scu.QErr(err)
		rscu, err := strconv.Atoi(line[l-5])
		scu.QErr(err)
		if ov != 1 && rscu != 1 {
			continue //the original rule by Poma et al.
		}
		a1, err := strconv.Atoi(line[5])
		scu.QErr(err)
		a2, err := strconv.Atoi(line[9])
		scu.QErr(err)
		chain1 := line[l-15]
		chain2 := line[l-11]
		if IsContiguous(a1, a2, exclude, chain1, chain2) {
			continue
		}
		index1, err := chem.MolIDNameChain2Index(mol, a1, "CA", chain1)
		scu.QErr(err)
		index2, err := chem.MolIDNameChain2Index(mol, a2, "CA", chain2)
		scu.QErr(err)
		if index1 > index2 {
			index1, index2 = index2, index1
		}
		tmp.Sub(ref.VecView(index2), ref.VecView(index1))
		set = append(set, qnative.Contact{I: index1, J: index2, Dist: tmp.Norm(2)})
		rcsuOnly = append(rcsuOnly, ov != 1)
		//kept in file order, the symmetry rule needs the direction as listed
		molids = append(molids, [2]int{a1, a2})
	}
	set2 := make([]qnative.Contact, 0, len(set))
	repeatedTest := make([][2]int, 0, 30)
	for i, v := range set {
		if rcsuOnly[i] && !contactIsSymmetric(i, set, molids) {
			fmt.Println("Non-symmetric contact excluded", v)
			continue
		}
		if isinArray([2]int{v.I, v.J}, repeatedTest) {
			continue
		}
		repeatedTest = append(repeatedTest, [2]int{v.I, v.J})
		set2 = append(set2, v)
	}
	return set2, nil

}
