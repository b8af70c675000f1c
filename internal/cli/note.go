package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"inkpad/internal/note"
	"inkpad/internal/store"
)

func runAdd(args []string, st store.Store) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	title := fs.String("t", "", "Note title")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	body := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if *title == "" && body == "" {
		fmt.Fprintln(os.Stderr, "Error: note title or body required")
		fmt.Fprintln(os.Stderr, "Usage: inkpad note add -t \"Title\" \"Body text\"")
		return 1
	}

	id, err := st.Insert(note.NewTextNote(*title, body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding note: %v\n", err)
		return 1
	}

	fmt.Printf("Added note %d\n", id)
	return 0
}

func runList(args []string, st store.Store) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	typeFilter := fs.String("type", "", "Filter by content type (text, audio, image, drawing, todo)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	notes := st.List()
	count := 0
	for _, n := range notes {
		if *typeFilter != "" && string(n.Type()) != *typeFilter {
			continue
		}
		count++
		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%4d  [%s]  %s", n.ID, n.Type().DisplayName(), title)
		if snippet := n.Snippet(); snippet != "" {
			line += "  " + snippet
		}
		fmt.Println(line)
	}
	if count == 0 {
		fmt.Println("No notes found.")
	}
	return 0
}

func runDelete(args []string, st store.Store) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: note id required")
		fmt.Fprintln(os.Stderr, "Usage: inkpad note delete <note-id>")
		return 1
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid note id %q\n", args[0])
		return 1
	}

	for _, n := range st.List() {
		if n.ID == id {
			if err := st.Delete(n); err != nil {
				fmt.Fprintf(os.Stderr, "Error deleting note: %v\n", err)
				return 1
			}
			fmt.Printf("Deleted note %d\n", id)
			return 0
		}
	}
	fmt.Fprintf(os.Stderr, "Note %d not found\n", id)
	return 1
}
