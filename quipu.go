/*

Quipu, a fraction-of-native-contacts (Q) calculator for MD trajectories.

Quipu scores every frame of a trajectory against a reference ("native")
structure with the smoothed contact indicator of Best, Hummer and Eaton,
writing one Q value per frame, one per line.

This program makes extensive use of the goChem Computational Chemistry library.
If you use this program, we kindly ask you support it by to citing the library as:

R. Mera-Adasme, G. Savasci and J. Pesonen, "goChem, a library for computational chemistry", http://www.gochem.org.


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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/gochem"
	"github.com/rmera/gochem/traj/dcd"
	"github.com/rmera/gochem/traj/xtc"
	"github.com/rmera/scu"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/quipu/qnative"
)

func main() {
	units := flag.String("units", "nm", "Length units of the coordinates. Options: nm, A")
	beta := flag.Float64("beta", -1, "Sharpness of the contact sigmoid, in inverse length units (<=0 takes the default for the chosen units)")
	lambda := flag.Float64("lambda", 1.8, "Tolerance multiplier applied to each native distance")
	cutoff := flag.Float64("cutoff", -1, "Maximum native-state distance for a heavy-atom pair to count as a contact (<=0 takes the default for the chosen units)")
	exclude := flag.Int("exclude", 3, "Exclude contacts between residues separated by this number of residues or less")
	begin := flag.Int("begin", 0, "First frame of the trajectory to score")
	skip := flag.Int("skip", 0, "Number of frames skipped between scored frames")
	cmapfile := flag.String("cmapfile", "", "File with Cieplak's Go contacts to use as the native contact set, instead of the heavy-atom distance rule")
	outname := flag.String("o", "", "File to write the Q series to, one value per line (default: standard output)")
	verbose := flag.Bool("v", false, "Print the selected native contacts")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Quipu: Fraction of native contacts, Q, per trajectory frame.\n Usage:\n  %s [flags] native.pdb trajectory.dcd \n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	O := qnative.DefaultOptions()
	if *units == "A" {
		O = qnative.DefaultAngstromOptions()
	} else if *units != "nm" {
		scu.QErr(fmt.Errorf("unsupported units %q, only nm and A are supported", *units))
	}
	O.Beta(*beta)
	O.Lambda(*lambda)
	O.Cutoff(*cutoff)
	O.MinSeparation(*exclude)
	O.Begin(*begin)
	O.Skip(*skip)
	mol, err := refRead(args[0])
	scu.QErr(err)
	mol.FillIndexes()
	//only the first conformation of the reference is used as the native state
	ref := mol.Coords[0]
	var contacts []qnative.Contact
	if *cmapfile != "" {
		contacts, err = ContactMapRead(mol, ref, *cmapfile, *exclude)
	} else {
		contacts, err = qnative.NativeContacts(mol, ref, O)
	}
	scu.QErr(err)
	fmt.Fprintf(os.Stderr, "%d native contacts\n", len(contacts))
	if *verbose {
		printContacts(mol, contacts)
	}
	traj, err := trajRead(args[1])
	scu.QErr(err)
	Q, err := qnative.QTrajContacts(traj, mol, contacts, O)
	scu.QErr(err)
	out := os.Stdout
	if *outname != "" {
		f, err := os.Create(*outname)
		scu.QErr(err)
		defer f.Close()
		out = f
	}
	for _, q := range Q {
		fmt.Fprintf(out, "%.6f\n", q)
	}
	if len(Q) > 0 {
		fmt.Fprintf(os.Stderr, "Q over %d frames: mean %5.3f, sigma %5.3f\n", len(Q), stat.Mean(Q, nil), stat.StdDev(Q, nil))
	}
}

//refRead reads the native structure. Only PDB and XYZ references are
//supported; anything else lacks the residue information the contact
//selection needs.
func refRead(name string) (*chem.Molecule, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdb":
		return chem.PDBFileRead(name)
	case ".xyz":
		return chem.XYZFileRead(name)
	}
	return nil, fmt.Errorf("quipu: unsupported reference format %q, use pdb or xyz", filepath.Ext(name))
}

//trajRead opens the trajectory by extension. Multi-model PDB and XYZ
//files act as their own trajectory, as a goChem Molecule satisfies the
//Traj interface.
func trajRead(name string) (chem.Traj, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".dcd":
		return dcd.New(name)
	case ".xtc":
		return xtc.New(name)
	case ".pdb":
		return chem.PDBFileRead(name)
	case ".xyz":
		return chem.XYZFileRead(name)
	}
	return nil, fmt.Errorf("quipu: unsupported trajectory format %q, use dcd, xtc, pdb or xyz", filepath.Ext(name))
}

func printContacts(mol chem.Atomer, contacts []qnative.Contact) {
	for _, c := range contacts {
		a1 := mol.Atom(c.I)
		a2 := mol.Atom(c.J)
		fmt.Fprintf(os.Stderr, "%s%d%s:%s -- %s%d%s:%s  %6.4f\n", a1.MolName, a1.MolID, a1.Chain, a1.Name, a2.MolName, a2.MolID, a2.Chain, a2.Name, c.Dist)
	}
}
