package network

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteArtifacts writes the two combined-network files into dir: one
// tab-separated file with a header row naming the endpoint columns, and one
// with identical rows and no header. Both are staged as temp files and
// renamed into place only after both have been written, so a failure never
// leaves a partial artifact behind.
func (n *Network) WriteArtifacts(dir string) error {
	var rows strings.Builder
	for _, e := range n.edges {
		rows.WriteString(e.Source)
		rows.WriteByte('\t')
		rows.WriteString(e.Target)
		rows.WriteByte('\n')
	}

	header := n.sourceCol + "\t" + n.targetCol + "\n" + rows.String()

	staged := make([]stagedFile, 0, 2)
	defer func() {
		for _, s := range staged {
			os.Remove(s.tmp)
		}
	}()

	for _, out := range []struct {
		name    string
		content string
	}{
		{HeaderFileName, header},
		{PlainFileName, rows.String()},
	} {
		tmp, err := stage(dir, out.content)
		if err != nil {
			return err
		}
		staged = append(staged, stagedFile{tmp: tmp, final: filepath.Join(dir, out.name)})
	}

	for i, s := range staged {
		if err := os.Rename(s.tmp, s.final); err != nil {
			return fmt.Errorf("writing %s: %w", s.final, err)
		}
		staged[i].tmp = s.final // already moved; deferred cleanup must not touch it
	}
	staged = nil

	return nil
}

type stagedFile struct {
	tmp   string
	final string
}

// stage writes content to a temp file in dir and returns its path. The temp
// file lives in the destination directory so the final rename stays on one
// filesystem.
func stage(dir, content string) (string, error) {
	f, err := os.CreateTemp(dir, ".combined-*.tmp")
	if err != nil {
		return "", fmt.Errorf("staging artifact: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("staging artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("staging artifact: %w", err)
	}
	return f.Name(), nil
}
