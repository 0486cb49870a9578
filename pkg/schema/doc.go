// Package schema describes organization trees outside the process: the Definition
// format read from files, its validation, and conversion to and from live trees.
//
// Basic usage:
//
//	def := schema.Definition{
//	    Kind:  "composite",
//	    Value: 2,
//	    Children: []schema.Definition{
//	        {Kind: "leaf", Value: 4},
//	        {Kind: "leaf", Value: 5},
//	    },
//	}
//
//	root, labels, err := schema.Build(def)
//	if err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // Handle each problem
//	    }
//	}
//
// Validate reports every problem in one pass, each as a *ValidationError carrying
// the path of the offending definition. Diff compares two definitions using the
// same paths.
package schema
