package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
)

func errql(t *testing.T, err error) {
	if err != nil {
		t.Fatal(err)
	}
}

//A minimal rCSU-server map. Pair (1,5) is an OV contact; (1,6) is
//rCSU-only but listed in both directions, so it stays; (1,2) is
//contiguous; the second (1,5) is a duplicate; (2,7) fails the Poma rule
//in one row and is a non-symmetric rCSU-only term in the other.
const testMap = `Contact map

    I1  AA  C I(PDB)    I2  AA  C I(PDB)    DISTANCE       CMs    rCSU    aSurf    rSurf    nSurf
===========================================================================================
R 1 1 MET A 1 5 LYS A 5 5.0 1 0 0 0 10.0 10.0 10.0 0
R 2 1 MET A 1 6 GLU A 6 6.0 0 0 0 1 10.0 10.0 10.0 0
R 3 6 GLU A 6 1 MET A 1 6.0 0 0 0 1 10.0 10.0 10.0 0
R 4 1 MET A 1 2 ALA A 2 3.8 1 0 0 0 10.0 10.0 10.0 0
R 5 1 MET A 1 5 LYS A 5 5.0 1 0 0 0 10.0 10.0 10.0 0
R 6 2 ALA A 2 7 GLY A 7 7.0 0 0 0 0 10.0 10.0 10.0 0
R 7 2 ALA A 2 7 GLY A 7 7.0 0 0 0 1 10.0 10.0 10.0 0
`

//one CA per residue, on the x axis, 1 A apart.
func testCAMol() (*chem.Topology, *v3.Matrix) {
	names := []string{"MET", "ALA", "SER", "THR", "LYS", "GLU", "GLY"}
	ats := make([]*chem.Atom, len(names))
	coords := v3.Zeros(len(names))
	for i := range names {
		at := new(chem.Atom)
		at.Name = "CA"
		at.Symbol = "C"
		at.MolName = names[i]
		at.MolID = i + 1
		at.Chain = "A"
		at.ID = i + 1
		ats[i] = at
		coords.Set(i, 0, float64(i))
	}
	return chem.NewTopology(0, 1, ats), coords
}

func TestContactMapRead(Te *testing.T) {
	mapname := filepath.Join(Te.TempDir(), "test.map")
	errql(Te, os.WriteFile(mapname, []byte(testMap), 0644))
	mol, ref := testCAMol()
	contacts, err := ContactMapRead(mol, ref, mapname, 3)
	errql(Te, err)
	if len(contacts) != 2 {
		Te.Fatalf("expected 2 contacts, got %d: %v", len(contacts), contacts)
	}
	//residues 1-5 are atoms 0 and 4, residues 1-6 are atoms 0 and 5.
	//Native distances come from the reference conformation, not from the
	//distance column of the map.
	if contacts[0].I != 0 || contacts[0].J != 4 || math.Abs(contacts[0].Dist-4.0) > 1e-9 {
		Te.Errorf("first contact: expected (0,4) at 4.0, got (%d,%d) at %v", contacts[0].I, contacts[0].J, contacts[0].Dist)
	}
	if contacts[1].I != 0 || contacts[1].J != 5 || math.Abs(contacts[1].Dist-5.0) > 1e-9 {
		Te.Errorf("second contact: expected (0,5) at 5.0, got (%d,%d) at %v", contacts[1].I, contacts[1].J, contacts[1].Dist)
	}
}

func TestContactMapMissingFile(Te *testing.T) {
	mol, ref := testCAMol()
	if _, err := ContactMapRead(mol, ref, filepath.Join(Te.TempDir(), "nope.map"), 3); err == nil {
		Te.Error("a missing contact map should have been reported")
	}
}

func TestIsContiguous(Te *testing.T) {
	if !IsContiguous(1, 4, 3, "A", "A") {
		Te.Error("residues 1 and 4 of the same chain are contiguous for limit 3")
	}
	if IsContiguous(1, 5, 3, "A", "A") {
		Te.Error("residues 1 and 5 of the same chain are not contiguous for limit 3")
	}
	if IsContiguous(1, 2, 3, "A", "B") {
		Te.Error("residues in different chains are never contiguous")
	}
}
