/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// minWidth is the narrowest a column is printed.
const minWidth = 4

// FprintTable writes a bordered text table followed by a row count.
// Rows shorter than columns are padded with empty cells.
func FprintTable(w io.Writer, columns []string, rows [][]string) error {
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = utf8.RuneCountInString(col)
		for _, row := range rows {
			if i < len(row) && utf8.RuneCountInString(row[i]) > colWidths[i] {
				colWidths[i] = utf8.RuneCountInString(row[i])
			}
		}
		if colWidths[i] < minWidth {
			colWidths[i] = minWidth
		}
	}

	bw := bufio.NewWriter(w)
	writeBorder(bw, colWidths)
	writeRow(bw, colWidths, columns)
	writeBorder(bw, colWidths)
	for _, row := range rows {
		writeRow(bw, colWidths, row)
	}
	writeBorder(bw, colWidths)
	fmt.Fprintf(bw, "(%d rows)\n", len(rows))
	return bw.Flush()
}

func writeRow(w *bufio.Writer, colWidths []int, cells []string) {
	w.WriteString("|")
	for i, width := range colWidths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(w, " %s%s |", cell, strings.Repeat(" ", width-utf8.RuneCountInString(cell)))
	}
	w.WriteString("\n")
}

func writeBorder(w *bufio.Writer, colWidths []int) {
	w.WriteString("+")
	for _, width := range colWidths {
		w.WriteString(strings.Repeat("-", width+2))
		w.WriteString("+")
	}
	w.WriteString("\n")
}
