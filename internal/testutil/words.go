// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil builds dictionary fixtures for tests.
package testutil

import (
	"strings"

	"github.com/ianlewis/go-ejdict/dict"
)

// Apple returns the "apple" word.
func Apple() dict.Word {
	return dict.Word{
		Words: []string{"apple"},
		Mean:  "『リンゴ』;リンゴの木",
	}
}

// AppleButter returns the "apple butter" word.
func AppleButter() dict.Word {
	return dict.Word{
		Words: []string{"apple butter"},
		Mean:  "リンゴジャム(リンゴに香料・砂糖を加えて煮つめたジャム)",
	}
}

// AppleGreen returns the "apple green" word.
func AppleGreen() dict.Word {
	return dict.Word{
		Words: []string{"apple green"},
		Mean:  "澄んだ淡い緑色",
	}
}

// Blue returns the "blue" word. Its meaning has several sub-definitions.
func Blue() dict.Word {
	return dict.Word{
		Words: []string{"blue"},
		Mean: "『青い』,あい色の / 青黒い / 《話》陰気な,憂うつな / " +
			"〈U〉『青色』,あい色;青色の着物 / " +
			"〈U〉〈C〉青色絵の具,あい色染料 / 《the~》《詩》青空,青い海",
	}
}

// Colour returns a word with two headwords.
func Colour() dict.Word {
	return dict.Word{
		Words: []string{"color", "colour"},
		Mean:  "〈U〉〈C〉『色』,色彩 / 〈U〉顔色,血色",
	}
}

// Words returns the four words apple, apple butter, apple green and blue in
// that order.
func Words() []dict.Word {
	return []dict.Word{Apple(), AppleButter(), AppleGreen(), Blue()}
}

// MakeTSV returns words in the tab-separated source format, one per line.
func MakeTSV(words []dict.Word) []byte {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
