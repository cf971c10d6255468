package playlistfile

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// PLS syntax markers
const (
	plsHeader  = "[playlist]"
	plsVersion = "Version=2"
)

func savePLS(p *model.Playlist, path string) error {
	var b strings.Builder
	b.WriteString(plsHeader + "\n")
	b.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(p.Tracks)))

	for i, track := range p.Tracks {
		n := i + 1
		length := -1
		if track.Metadata.Duration > 0 {
			length = int(track.Metadata.Duration.Round(time.Second).Seconds())
		}

		b.WriteString(fmt.Sprintf("File%d=%s\n", n, track.Path))
		b.WriteString(fmt.Sprintf("Title%d=%s\n", n, track.DisplayTitle()))
		b.WriteString(fmt.Sprintf("Length%d=%d\n", n, length))
	}

	b.WriteString(plsVersion + "\n")
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func loadPLS(path string) (*model.Playlist, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	paths := map[int]string{}
	titles := map[int]string{}
	lengths := map[int]int{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.EqualFold(line, plsHeader) {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		switch {
		case strings.HasPrefix(key, "File"):
			if n, err := strconv.Atoi(key[len("File"):]); err == nil {
				paths[n] = value
			}
		case strings.HasPrefix(key, "Title"):
			if n, err := strconv.Atoi(key[len("Title"):]); err == nil {
				titles[n] = value
			}
		case strings.HasPrefix(key, "Length"):
			if n, err := strconv.Atoi(key[len("Length"):]); err == nil {
				if length, err := strconv.Atoi(value); err == nil {
					lengths[n] = length
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	numbers := make([]int, 0, len(paths))
	for n := range paths {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	p := model.NewPlaylist(playlistName(path))
	var skipped []string

	for _, n := range numbers {
		full := resolvePath(paths[n], path)
		if _, err := os.Stat(full); err != nil {
			skipped = append(skipped, full)
			continue
		}

		var duration time.Duration
		if secs := lengths[n]; secs > 0 {
			duration = time.Duration(secs) * time.Second
		}

		p.Tracks = append(p.Tracks, model.NewTrack(full, model.Metadata{
			Title:    titles[n],
			Duration: duration,
		}))
	}

	return p, skipped, nil
}
