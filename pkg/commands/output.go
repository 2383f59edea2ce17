package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/MercMayhem/PngMe/pkg/chunk"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// writeChunks displays chunk details in the configured format
func (r *Runner) writeChunks(infos []ChunkInfo) error {
	if r.options.Format == formatJSON {
		return r.writeJSON(infos)
	}

	if len(infos) == 0 {
		fmt.Fprintln(r.out, "No chunks found")
		return nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tTYPE\tLENGTH\tCRC\tCRITICAL\tPUBLIC\tSAFE-TO-COPY")
	for _, info := range infos {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			info.Index, info.Type, info.Length, info.CRC,
			yesNo(info.Critical), yesNo(info.Public), yesNo(info.SafeToCopy))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !r.options.Styled {
		_, err := r.out.Write(buf.Bytes())
		return err
	}

	// Styling is applied per line after alignment so escape codes do not
	// count towards column widths.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	styles := r.styles()
	for i, line := range lines {
		switch {
		case i == 0:
			line = styles.header.Render(line)
		case infos[i-1].Critical:
			line = styles.critical.Render(line)
		default:
			line = styles.ancillary.Render(line)
		}
		fmt.Fprintln(r.out, line)
	}
	return nil
}

// writeTypes displays one chunk type per line
func (r *Runner) writeTypes(chunks []*chunk.Chunk) error {
	if r.options.Format == formatJSON {
		types := make([]string, 0, len(chunks))
		for _, c := range chunks {
			types = append(types, c.ChunkType().String())
		}
		return r.writeJSON(types)
	}

	fmt.Fprintln(r.out, "Chunks:")
	for _, c := range chunks {
		fmt.Fprintln(r.out, c.ChunkType().String())
	}
	return nil
}

// writeMessages displays decoded messages in the configured format
func (r *Runner) writeMessages(messages []Message) error {
	if r.options.Format == formatJSON {
		return r.writeJSON(messages)
	}

	for _, m := range messages {
		fmt.Fprintf(r.out, "Message: %s\n", m.Message)
	}
	return nil
}

func (r *Runner) writeJSON(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

type tableStyles struct {
	header    lipgloss.Style
	critical  lipgloss.Style
	ancillary lipgloss.Style
}

// styles returns the table styles rendered with a 256 color profile.
func (r *Runner) styles() tableStyles {
	renderer := lipgloss.NewRenderer(r.out)
	renderer.SetColorProfile(termenv.ANSI256)
	return tableStyles{
		header:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		critical:  renderer.NewStyle().Foreground(lipgloss.Color("241")),
		ancillary: renderer.NewStyle().Foreground(lipgloss.Color("86")),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
