// Package jsondoc models a JSON settings file as an ordered document.
//
// Key order matters in this codebase: it decides the sidebar order in the
// editor and the key order written back to disk. encoding/json decodes
// objects into Go maps and loses that order, so the package keeps its own
// ordered Document and an immutable Value variant on top of gjson.
//
// Values are a closed set of kinds:
//
//	String  Bool  Number  Object  Array  Null
//
// Code that needs to branch on the kind should go through Match, which takes
// a Matcher with one method per kind. Adding a kind adds a method, so every
// matcher in the tree stops compiling until it handles the new case.
//
// Example usage:
//
//	doc, err := jsondoc.Parse(data)
//	if err != nil {
//		return err
//	}
//	port, _ := doc.Get("Network")
//	fmt.Println(jsondoc.RenderDocument(doc))
package jsondoc
