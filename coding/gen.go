//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// tables from qrencode-3.1.1/qrspec.c, versions 1-20, level M

var capacity = [21]struct {
	words int // total codewords
	ec    int // check codewords
}{
	{0, 0},
	{26, 10}, // 1
	{44, 16},
	{70, 26},
	{100, 36},
	{134, 48}, // 5
	{172, 64},
	{196, 72},
	{242, 88},
	{292, 110},
	{346, 130}, //10
	{404, 150},
	{466, 176},
	{532, 198},
	{581, 216},
	{655, 240}, //15
	{733, 280},
	{815, 308},
	{901, 338},
	{991, 364},
	{1085, 416}, //20
}

var eccTable = [21][2]int{
	{0, 0},
	{1, 0}, {1, 0}, {1, 0}, {2, 0}, {2, 0}, // 1- 5
	{4, 0}, {4, 0}, {2, 2}, {3, 2}, {4, 1}, // 6-10
	{1, 4}, {6, 2}, {8, 1}, {4, 5}, {5, 5}, //11-15
	{7, 3}, {10, 1}, {9, 4}, {3, 11}, {3, 13}, //16-20
}

var align = [21][2]int{
	{0, 0},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1- 5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, //11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, //16-20
}

// bch appends the remainder of v·x**(deg poly) divided by poly.
func bch(v, poly uint32, n int) uint32 {
	rem := v << n
	for i := 31; i >= n; i-- {
		if rem&(1<<i) != 0 {
			rem ^= poly << (i - n)
		}
	}
	return v<<n | rem
}

func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	return uint16(bch(uint32(fb), formatPoly, 10))
}

func calcVersion(v int) uint32 {
	const versionPoly = 0x1f25
	return bch(uint32(v), versionPoly, 12)
}

func alignCoords(v int) []string {
	a := align[v]
	if a[0] == 0 {
		return nil
	}
	c := []string{"6", fmt.Sprint(a[0])}
	if a[1] == 0 {
		return c
	}
	for x := a[1]; x <= v*4+17-7; x += a[1] - a[0] {
		c = append(c, fmt.Sprint(x))
	}
	return c
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table for error correction level M.
var vtab = [MaxVersion + 1]version{
`)
	for i := 1; i <= 20; i++ {
		nb := eccTable[i][0] + eccTable[i][1]
		words, ec := capacity[i].words, capacity[i].ec
		data := words - ec
		cc := 8
		if i > 9 {
			cc = 16
		}
		fmt.Fprintf(w, "\t%d: {capacity: %d, bytes: %d, check: %d, "+
			"group: [2]group{{%d, %d}, {%d, %d}}",
			i, (data*8-4-cc)/8, words, ec/nb,
			eccTable[i][0], data/nb, eccTable[i][1], data/nb+1)
		if c := alignCoords(i); c != nil {
			fmt.Fprintf(w, ", align: []int{%s}", strings.Join(c, ", "))
		}
		if i >= 7 {
			fmt.Fprintf(w, ", pattern: 0x%05x", calcVersion(i))
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// Format information for level M, indexed by mask.\n"+
		"var ftab = [8]uint16{\n\t")
	for m := 0; m < 8; m++ {
		fb := uint16(0) << 3 // M=00
		fb |= uint16(m)      // mask
		fb = calcFormat(fb) ^ 0x5412
		fmt.Fprintf(w, "%#04x, ", fb)
	}
	fmt.Fprintln(w, "\n}")
	w.Flush()
}
