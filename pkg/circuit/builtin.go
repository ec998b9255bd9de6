package circuit

import "fmt"

// Built-in component type ids.
const (
	TypeArduinoUno = "arduino-uno"
	TypeLED        = "led-5mm"
	TypeResistor   = "resistor"
	TypePushbutton = "pushbutton"
	TypeBuzzer     = "buzzer"
	TypeBreadboard = "breadboard"
)

// Well-known pin ids referenced by the connection rules and the validator.
const (
	PinAnode    = "ANODE"
	PinCathode  = "CATHODE"
	PinTerm1    = "TERM1"
	PinTerm2    = "TERM2"
	PinButton1A = "PIN1A"
	PinButton1B = "PIN1B"
	PinButton2A = "PIN2A"
	PinButton2B = "PIN2B"
	PinPositive = "POSITIVE"
	PinNegative = "NEGATIVE"
)

// breadboardColumns is the column count of the built-in half-plus breadboard.
// Each column has five tied holes above and five below the center gap, plus
// two 25-hole power rails on each edge.
const breadboardColumns = 30

func builtinDefinitions() []*Definition {
	return []*Definition{
		arduinoUno(),
		{
			TypeID: TypeLED,
			Pins: []Pin{
				{ID: PinAnode, Type: PinTerminal},
				{ID: PinCathode, Type: PinTerminal},
			},
		},
		{
			TypeID: TypeResistor,
			Pins: []Pin{
				{ID: PinTerm1, Type: PinTerminal},
				{ID: PinTerm2, Type: PinTerminal},
			},
		},
		{
			TypeID: TypePushbutton,
			Pins: []Pin{
				{ID: PinButton1A, Type: PinTerminal},
				{ID: PinButton1B, Type: PinTerminal},
				{ID: PinButton2A, Type: PinTerminal},
				{ID: PinButton2B, Type: PinTerminal},
			},
		},
		{
			TypeID: TypeBuzzer,
			Pins: []Pin{
				{ID: PinPositive, Type: PinTerminal},
				{ID: PinNegative, Type: PinTerminal},
			},
		},
		breadboard(),
	}
}

func arduinoUno() *Definition {
	pins := []Pin{
		{ID: "5V", Type: PinPower},
		{ID: "3V3", Type: PinPower},
		{ID: "VIN", Type: PinPower},
		{ID: "GND1", Type: PinGround},
		{ID: "GND2", Type: PinGround},
		{ID: "GND3", Type: PinGround},
		{ID: "AREF", Type: PinCommunication},
		{ID: "RESET", Type: PinCommunication},
	}
	pwm := map[int]bool{3: true, 5: true, 6: true, 9: true, 10: true, 11: true}
	for i := 0; i <= 13; i++ {
		typ := PinDigital
		if pwm[i] {
			typ = PinPWM
		}
		pins = append(pins, Pin{ID: fmt.Sprintf("D%d", i), Type: typ})
	}
	for i := 0; i <= 5; i++ {
		pins = append(pins, Pin{ID: fmt.Sprintf("A%d", i), Type: PinAnalog})
	}
	return &Definition{TypeID: TypeArduinoUno, Board: true, Pins: pins}
}

// breadboard generates the hole grid. Rows a-e of one column share the net
// "t<col>", rows f-j share "b<col>", and each rail hole shares its rail net.
func breadboard() *Definition {
	var pins []Pin
	for _, rail := range []struct{ prefix, net string }{
		{"tp", "rail-top-plus"},
		{"tn", "rail-top-minus"},
	} {
		for i := 1; i <= 25; i++ {
			pins = append(pins, Pin{ID: fmt.Sprintf("%s%d", rail.prefix, i), Type: PinTerminal, Net: rail.net})
		}
	}
	for col := 1; col <= breadboardColumns; col++ {
		for _, row := range []string{"a", "b", "c", "d", "e"} {
			pins = append(pins, Pin{ID: fmt.Sprintf("%s%d", row, col), Type: PinTerminal, Net: fmt.Sprintf("t%d", col)})
		}
	}
	for col := 1; col <= breadboardColumns; col++ {
		for _, row := range []string{"f", "g", "h", "i", "j"} {
			pins = append(pins, Pin{ID: fmt.Sprintf("%s%d", row, col), Type: PinTerminal, Net: fmt.Sprintf("b%d", col)})
		}
	}
	for _, rail := range []struct{ prefix, net string }{
		{"bp", "rail-bottom-plus"},
		{"bn", "rail-bottom-minus"},
	} {
		for i := 1; i <= 25; i++ {
			pins = append(pins, Pin{ID: fmt.Sprintf("%s%d", rail.prefix, i), Type: PinTerminal, Net: rail.net})
		}
	}
	return &Definition{TypeID: TypeBreadboard, Pins: pins}
}
