// This file is part of Cabinet.
//
// Cabinet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cabinet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cabinet.  If not, see <https://www.gnu.org/licenses/>.

package mephisto

import "fmt"

// NumDigits is the number of digits on the LCD.
const NumDigits = 4

// the blanking mask values. the mask is clear when the blanking line is
// asserted
const (
	blankOff = uint8(0x00)
	blankOn  = uint8(0xff)
)

// LCD is the four digit display and the shift register that feeds it. The
// digit value is the segment pattern exactly as written by the CPU.
type LCD struct {
	Digits [NumDigits]uint8

	counter uint8
	mask    uint8

	// called whenever a digit is written
	onDigit func(n int, v uint8)
}

func newLCD(mask uint8) *LCD {
	return &LCD{
		counter: NumDigits - 1,
		mask:    mask,
	}
}

func (lcd *LCD) String() string {
	return fmt.Sprintf("lcd: %02x %02x %02x %02x (next=%d mask=%02x)",
		lcd.Digits[0], lcd.Digits[1], lcd.Digits[2], lcd.Digits[3], lcd.counter, lcd.mask)
}

// Counter returns the digit that will be written next.
func (lcd *LCD) Counter() int {
	return int(lcd.counter)
}

// Blanked returns true if writes to the display are currently suppressed.
func (lcd *LCD) Blanked() bool {
	return lcd.mask != blankOff
}

// reset the shift register. the digits and the mask are not affected
func (lcd *LCD) reset() {
	lcd.counter = NumDigits - 1
}

// setLine is the callback for the latch output that drives blanking
func (lcd *LCD) setLine(state bool) {
	if state {
		lcd.mask = blankOff
	} else {
		lcd.mask = blankOn
	}
}

// Write a value to the shift register. The counter moves to the next digit
// whether or not the write was blanked.
func (lcd *LCD) Write(data uint8) {
	if lcd.mask == blankOff {
		lcd.Digits[lcd.counter] = data
		if lcd.onDigit != nil {
			lcd.onDigit(int(lcd.counter), data)
		}
	}
	lcd.counter = (lcd.counter - 1) & (NumDigits - 1)
}
