package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/internal/schema"
)

func schemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List registered document types and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range schema.All() {
				fmt.Printf("%s (%s)\n", s.DocType, s.Label)
				for _, f := range s.Fields {
					fmt.Printf("  %-28s %s\n", f.Name, kindName(f.Kind))
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func kindName(k schema.FieldKind) string {
	switch k {
	case schema.KindStringList:
		return "list of string"
	case schema.KindObjectList:
		return "list of object"
	case schema.KindStringMap:
		return "map of string to string"
	default:
		return "string"
	}
}
