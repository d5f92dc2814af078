package treedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/reltree/tree"
	tp "github.com/xlab/treeprint"
)

// Print renders the subtree rooted at node as text, one node per line.
// Every node is labelled with its printable value and its depth.
func Print[T any](node *tree.Node[T]) string {
	if node == nil {
		return ""
	}
	printer := tp.New()
	printer.SetValue(label(node))
	printNode(printer, node)
	return printer.String()
}

func printNode[T any](branch tp.Tree, node *tree.Node[T]) {
	for _, ch := range node.Children() {
		if ch.IsLeaf() {
			branch.AddNode(label(ch))
		} else {
			printNode(branch.AddBranch(label(ch)), ch)
		}
	}
}

func label[T any](node *tree.Node[T]) string {
	return fmt.Sprintf("%s (d=%d)", node.PrintableValue(), node.Depth())
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for the subtree rooted at node. The diagram
// is in GraphViz (DOT) format.
func ToGraphViz[T any](node *tree.Node[T], w io.Writer) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("treenode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(treeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*tree.Node[T]]string)
	emit := func(n *tree.Node[T], parent *tree.Node[T], position int) (*tree.Node[T], error) {
		name := fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
		err := gparams.NodeTmpl.Execute(w, dotnode{
			Name:  name,
			Label: n.PrintableValue(),
			Depth: n.Depth(),
		})
		if err != nil {
			return nil, err
		}
		if pname, ok := dict[parent]; ok {
			if err = gparams.EdgeTmpl.Execute(w, edge{pname, name, position}); err != nil {
				return nil, err
			}
		}
		return n, nil
	}
	nodes, err := tree.NewWalker(node).TopDown(emit).Promise()()
	if err != nil && err != tree.ErrEmptyTree {
		return err
	}
	tracer().Debugf("wrote %d nodes to DOT diagram", len(nodes))
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a tree node and a testing.T, it will
// create a Graphiviz image of the subtree under `node` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty[T any](node *tree.Node[T], t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "tree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing tree digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(node, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type dotnode struct {
	Name  string
	Label string
	Depth int
}

type edge struct {
	From, To string
	Position int
}

// shortText truncates a node label and quotes it for DOT.
func shortText(s string) string {
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ .Name }}	[ label={{ shortstring .Label }} xlabel="d={{ .Depth }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const treeEdgeTmpl = `{{ .From }} -> {{ .To }} [label="{{ .Position }}" weight=1] ;
`
