// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(annotationsGuide)
	app.Add(projectsGuide)
	app.Add(treeFormatsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyView reads a gene tree, and optionally a species tree and the annotations
of the gene tree leaves. To reduce the burden of keeping track of many files,
a single project file is used to hold the reference of all files required to
build a view. This guide explains the structure of the file, but most of the
time, the best way to edit or view this file is by using the command
'phyview prj'.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phyview project files
	dataset	path
	alignment	alignment.json
	domains	domains.json
	genetree	gene-tree.json
	keep	model-organisms.tab
	speciestree	https://example.org/species.nh

Paths can be local files, relative to the directory of the project file, or
HTTP URLs.

The valid file types are:

- Gene tree. Defined by the dataset keyword "genetree". This is the tree to
  be drawn. It is required by any view.
- Species tree. Defined by the dataset keyword "speciestree". This tree is
  drawn side by side with the gene tree, and the shared taxa are connected.
- Alignment. Defined by the dataset keyword "alignment". A JSON file with the
  aligned sequences of the gene tree leaves.
- Domains. Defined by the dataset keyword "domains". A JSON file with the
  protein domains of the gene tree leaves.
- Retained taxa. Defined by the dataset keyword "keep". A tab-delimited file
  with the taxa kept when a tree is pruned. The file must have a "taxon"
  column, and can have a "color" column. If it is not defined, a set of model
  organisms is used.
	`,
}

var treeFormatsGuide = &command.Command{
	Usage: "tree-formats",
	Short: "about tree file formats",
	Long: `
PhyView reads trees in three formats. By default, the format is taken from the
extension of the file:

	.json        nested JSON objects
	.tab, .tsv   tab-delimited time calibrated trees
	any other    Newick

In commands that read a tree file, the flag --format can be used to set the
format explicitly.

In Newick format each node can have a label and a branch length, as in:

	(A:1,(B:0.005,C:3)D:0.5)E:0;

Labels of leaves are used as taxon names. Numeric labels of inner nodes are
read as support values. Labels can be quoted with single quotes, and comments
in square brackets are ignored.

In JSON format, each node is an object with the fields "name", "taxon",
"branch_length" (a number, or "N/A" if undefined), "bootstrap", and
"children". Here is an example:

	{"name": "E", "children": [
		{"name": "A", "taxon": "Homo_sapiens", "branch_length": 1},
		{"name": "B", "taxon": "Mus_musculus", "branch_length": "N/A"}
	]}

Time calibrated trees are the tab-delimited files used by the timetree
package. Branch lengths are read in million years. Only the first tree of the
file is used.
	`,
}

var annotationsGuide = &command.Command{
	Usage: "annotations",
	Short: "about annotation files",
	Long: `
Annotations are the data drawn next to the leaves of a gene tree. They are
stored as a JSON array of records, each record with the fields:

	- name              the name of the annotated leaf (required)
	- seq_length        the length of the sequence
	  (or alignment_length)
	- sequence          the aligned sequence, as a string or an array
	- domains           an array of protein domains, each one with the
	                    fields "start", "end", "label", and an optional
	                    "color"

Here is an example:

	[
		{"name": "ENSP01", "alignment_length": 4, "sequence": "MK-L"},
		{"name": "ENSP02", "seq_length": 300, "domains": [
			{"start": 10, "end": 80, "label": "PF00001"}
		]}
	]

Records are matched by name with the nodes of the gene tree. Records without a
name are ignored, and records without a matching node are not drawn.
	`,
}
