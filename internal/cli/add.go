package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ressido/ressido/internal/onboarding"
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/structure"
)

// draftFile is the JSON shape accepted by --file: the same details and
// structure payload the API takes.
type draftFile struct {
	Details   onboarding.Details `json:"details"`
	Structure structure.Tree     `json:"structure"`
}

func newAddCmd() *cobra.Command {
	var (
		file             string
		name             string
		address          string
		city             string
		propertyType     string
		photo            string
		caretakerName    string
		caretakerContact string
		floors           int
		rooms            int
		beds             int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Onboard a new property",
		Long: "Onboard a new property. Provide details and a floor/room/bed layout either " +
			"via flags (--floors/--rooms/--beds builds a uniform layout) or via --file " +
			"pointing at a JSON draft with explicit structure.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return runAddFromFile(file)
			}
			d := onboarding.Details{
				Name:             name,
				Address:          address,
				City:             city,
				Type:             property.Type(propertyType),
				Photo:            photo,
				CaretakerName:    caretakerName,
				CaretakerContact: caretakerContact,
			}
			return runAdd(d, floors, rooms, beds)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON draft file with details and structure")
	cmd.Flags().StringVar(&name, "name", "", "property name")
	cmd.Flags().StringVar(&address, "address", "", "street address or locality")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&propertyType, "type", "", "property type (boys_pg|girls_pg|co_living|hostel)")
	cmd.Flags().StringVar(&photo, "photo", "", "photo URL")
	cmd.Flags().StringVar(&caretakerName, "caretaker", "", "caretaker name")
	cmd.Flags().StringVar(&caretakerContact, "caretaker-contact", "", "caretaker phone number")
	cmd.Flags().IntVar(&floors, "floors", 1, "number of floors")
	cmd.Flags().IntVar(&rooms, "rooms", 1, "rooms per floor")
	cmd.Flags().IntVar(&beds, "beds", 1, "beds per room")

	return cmd
}

func runAddFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading draft file: %w", err)
	}

	var draft draftFile
	if err := json.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("parsing draft file: %w", err)
	}

	return submitDraft(draft.Details, draft.Structure)
}

func runAdd(d onboarding.Details, floors, rooms, beds int) error {
	if floors < 1 || rooms < 1 || beds < 1 {
		return fmt.Errorf("layout needs at least one floor, one room and one bed")
	}
	return submitDraft(d, buildLayout(floors, rooms, beds))
}

// buildLayout constructs a uniform tree through the structure editor,
// the same path the interactive wizard takes.
func buildLayout(floors, rooms, beds int) structure.Tree {
	editor := structure.NewEditor()
	var tree structure.Tree
	for f := 0; f < floors; f++ {
		tree = editor.AddFloor(tree)
		floor := tree.Floors[len(tree.Floors)-1]
		for r := 0; r < rooms; r++ {
			tree = editor.AddRoom(tree, floor.ID)
			room := tree.Floors[len(tree.Floors)-1].Rooms[r]
			for b := 0; b < beds; b++ {
				tree = editor.AddBed(tree, floor.ID, room.ID)
			}
		}
	}
	return tree
}

// submitDraft runs the two-step wizard to completion and persists the
// aggregated property, remotely or against the local database.
func submitDraft(d onboarding.Details, tree structure.Tree) error {
	if useServer() {
		c := newAPIClient()
		p, err := c.SubmitDraft(d, tree)
		if err != nil {
			return fmt.Errorf("adding property: %w", err)
		}
		if isJSON() {
			return printJSON(p)
		}
		fmt.Println("Property added successfully!")
		printPropertySummary(p)
		return nil
	}

	w := onboarding.NewWizard()
	w.SetDetails(d)
	if err := w.Next(); err != nil {
		return err
	}
	w.SetTree(tree)

	p, err := w.Submit(w.Editor().NewID)
	if err != nil {
		return err
	}

	repo, database, err := newPropertyRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	saved, err := repo.Add(getIdentity(), &p)
	if err != nil {
		return fmt.Errorf("adding property: %w", err)
	}

	if isJSON() {
		return printJSON(saved)
	}

	fmt.Println("Property added successfully!")
	printPropertySummary(saved)
	return nil
}
