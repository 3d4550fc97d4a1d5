package document

import "strings"

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockBlank
)

type Block struct {
	Kind BlockKind
	Text string
}

// Parse reads the light markdown models tend to emit. Headings and bullets
// are recognised; emphasis markers are dropped. Runs of blank lines collapse
// into one BlockBlank.
func Parse(body string) []Block {
	var blocks []Block
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			if len(blocks) > 0 && blocks[len(blocks)-1].Kind != BlockBlank {
				blocks = append(blocks, Block{Kind: BlockBlank})
			}
		case strings.HasPrefix(line, "#"):
			blocks = append(blocks, Block{Kind: BlockHeading, Text: StripEmphasis(strings.TrimLeft(line, "# "))})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "), strings.HasPrefix(line, "+ "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: StripEmphasis(line[2:])})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: StripEmphasis(line)})
		}
	}
	for len(blocks) > 0 && blocks[len(blocks)-1].Kind == BlockBlank {
		blocks = blocks[:len(blocks)-1]
	}
	return blocks
}

var emphasisReplacer = strings.NewReplacer("**", "", "__", "", "`", "")

func StripEmphasis(s string) string {
	return strings.TrimSpace(emphasisReplacer.Replace(s))
}
