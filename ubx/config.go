package ubx

import (
	"strconv"
	"strings"
)

// cfgEntry is one CFG-* fixed-format submessage: its name (without the
// "CFG-" prefix), its class-06 message id, and its ordered field-type
// sequence.
type cfgEntry struct {
	Name   string
	ID     uint8
	Fields []FieldType
}

// cfgCatalogue holds the 34 field-sequenced CFG-* submessages this
// builder can generate. VALDEL/VALGET/VALSET are handled separately in
// genValset/genValget/genValdel: their payload carries key ids resolved
// through valKeys (one key/value pair for VALSET, a variable-length key
// list for VALGET/VALDEL), not a fixed sequence.
var cfgCatalogue = []cfgEntry{
	{"PRT", 0x00, []FieldType{FU1, FU1, FU2, FU4, FU4, FU2, FU2, FU2, FU2}},
	{"USB", 0x1B, []FieldType{FU2, FU2, FU2, FU2, FU2, FU2, FS32, FS32, FS32}},
	{"MSG", 0x01, []FieldType{FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1}},
	{"NMEA", 0x17, []FieldType{FU1, FU1, FU1, FU1}},
	{"RATE", 0x08, []FieldType{FU2, FU2, FU2}},
	{"CFG", 0x09, []FieldType{FU4, FU4, FU4, FU1}},
	{"TP", 0x07, []FieldType{FU4, FU4, FI1, FU1, FU2, FI2, FI2, FI4}},
	{"NAV2", 0x1A, []FieldType{FU1, FU1, FU2, FU1, FU1, FU1, FU1, FI4, FU1, FU1, FU1, FU1, FU1, FU1, FU2, FU2, FU2, FU2, FU2, FU1, FU1, FU2, FU4, FU4}},
	{"DAT", 0x06, []FieldType{FR8, FR8, FR4, FR4, FR4, FR4, FR4, FR4, FR4}},
	{"INF", 0x02, []FieldType{FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1}},
	{"RST", 0x04, []FieldType{FU2, FU1, FU1}},
	{"RXM", 0x11, []FieldType{FU1, FU1}},
	{"ANT", 0x13, []FieldType{FU2, FU2}},
	{"FXN", 0x0E, []FieldType{FU4, FU4, FU4, FU4, FU4, FU4, FU4, FU4}},
	{"SBAS", 0x16, []FieldType{FU1, FU1, FU1, FU1, FU4}},
	{"LIC", 0x80, []FieldType{FU2, FU2, FU2, FU2, FU2, FU2}},
	{"TM", 0x10, []FieldType{FU4, FU4, FU4}},
	{"TM2", 0x19, []FieldType{FU1, FU1, FU2, FU4, FU4}},
	{"TMODE", 0x1D, []FieldType{FU4, FI4, FI4, FI4, FU4, FU4, FU4}},
	{"EKF", 0x12, []FieldType{FU1, FU1, FU1, FU1, FU4, FU2, FU2, FU1, FU1, FU2}},
	{"GNSS", 0x3E, []FieldType{FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU4}},
	{"ITFM", 0x39, []FieldType{FU4, FU4}},
	{"LOGFILTER", 0x47, []FieldType{FU1, FU1, FU2, FU2, FU2, FU4}},
	{"NAV5", 0x24, []FieldType{FU2, FU1, FU1, FI4, FU4, FI1, FU1, FU2, FU2, FU2, FU2, FU1, FU1, FU1, FU1, FU1, FU1, FU2, FU1, FU1, FU1, FU1, FU1, FU1}},
	{"NAVX5", 0x23, []FieldType{FU2, FU2, FU4, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU2, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU2}},
	{"ODO", 0x1E, []FieldType{FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1, FU1}},
	{"PM2", 0x3B, []FieldType{FU1, FU1, FU1, FU1, FU4, FU4, FU4, FU4, FU2, FU2}},
	{"PWR", 0x57, []FieldType{FU1, FU1, FU1, FU1, FU4}},
	{"RINV", 0x34, []FieldType{FU1, FU1}},
	{"SMGR", 0x62, []FieldType{FU1, FU1, FU2, FU2, FU1, FU1, FU2, FU2, FU2, FU2, FU4}},
	{"TMODE2", 0x36, []FieldType{FU1, FU1, FU2, FI4, FI4, FI4, FU4, FU4, FU4}},
	{"TMODE3", 0x71, []FieldType{FU1, FU1, FU2, FI4, FI4, FI4, FU4, FU4, FU4}},
	{"TPS", 0x31, []FieldType{FU1, FU1, FU1, FU1, FI2, FI2, FU4, FU4, FU4, FU4, FI4, FU4}},
	{"TXSLOT", 0x53, []FieldType{FU1, FU1, FU1, FU1, FU4, FU4, FU4, FU4, FU4}},
}

const (
	msgIDValDel = 0x8C
	msgIDValGet = 0x8B
	msgIDValSet = 0x8A
)

func lookupCfg(name string) (cfgEntry, bool) {
	for _, e := range cfgCatalogue {
		if e.Name == name {
			return e, true
		}
	}
	return cfgEntry{}, false
}

// setField writes one scalar field of the given type at buff[0:], parsed
// from the string arg (0 if arg is empty), returning the number of bytes
// written.
func setField(buff []byte, t FieldType, arg string) int {
	switch t {
	case FU1:
		v, _ := strconv.ParseUint(arg, 10, 8)
		setU1(buff, uint8(v))
		return 1
	case FU2:
		v, _ := strconv.ParseUint(arg, 10, 16)
		setU2(buff, uint16(v))
		return 2
	case FU4:
		v, _ := strconv.ParseUint(arg, 10, 32)
		setU4(buff, uint32(v))
		return 4
	case FU8:
		v, _ := strconv.ParseUint(arg, 10, 64)
		setU8(buff, v)
		return 8
	case FI1:
		v, _ := strconv.ParseInt(arg, 10, 8)
		setI1(buff, int8(v))
		return 1
	case FI2:
		v, _ := strconv.ParseInt(arg, 10, 16)
		setI2(buff, int16(v))
		return 2
	case FI4:
		v, _ := strconv.ParseInt(arg, 10, 32)
		setI4(buff, int32(v))
		return 4
	case FR4:
		v, _ := strconv.ParseFloat(arg, 32)
		setR4(buff, float32(v))
		return 4
	case FR8:
		v, _ := strconv.ParseFloat(arg, 64)
		setR8(buff, v)
		return 8
	case FS32:
		copy(buff, []byte(fmt32(arg)))
		return 32
	}
	return 0
}

func fmt32(s string) string {
	if len(s) >= 32 {
		return s[:32]
	}
	return s + strings.Repeat(" ", 32-len(s))
}

// genFixed builds a fixed-format CFG-* frame from its already-resolved
// catalogue entry and the whitespace-split argument tokens (args[0] is
// the command name).
func genFixed(e cfgEntry, args []string) []byte {
	body := make([]byte, 0, len(e.Fields)*8)
	scratch := make([]byte, 32)
	for i, ft := range e.Fields {
		arg := ""
		if i+1 < len(args) {
			arg = args[i+1]
		}
		n := setField(scratch, ft, arg)
		body = append(body, scratch[:n]...)
	}
	return finishFrame(cfgClass, e.ID, body)
}

// genValset builds a CFG-VALSET frame: "CFG-VALSET version layer
// transaction reserved key value", where key carries the "CFG-" prefix
// stripped before catalogue lookup.
func genValset(args []string) []byte {
	if len(args) < 7 {
		return nil
	}
	key, ok := lookupValKey(strings.TrimPrefix(args[5], "CFG-"))
	if !ok {
		return nil
	}
	body := make([]byte, 4, 4+4+8)
	for i := 0; i < 4; i++ {
		v, _ := strconv.ParseUint(args[1+i], 10, 8)
		body[i] = byte(v)
	}
	idBuf := make([]byte, 4)
	setU4(idBuf, key.ID)
	body = append(body, idBuf...)
	scratch := make([]byte, 8)
	n := setField(scratch, key.Type, args[6])
	body = append(body, scratch[:n]...)
	return finishFrame(cfgClass, msgIDValSet, body)
}

// genValget builds a CFG-VALGET frame: "CFG-VALGET version layer
// position key [key ...]".
func genValget(args []string) []byte {
	if len(args) < 5 {
		return nil
	}
	body := make([]byte, 2, 2+2+4*(len(args)-4))
	v, _ := strconv.ParseUint(args[1], 10, 8)
	body[0] = byte(v)
	v, _ = strconv.ParseUint(args[2], 10, 8)
	body[1] = byte(v)
	posBuf := make([]byte, 2)
	pv, _ := strconv.ParseUint(args[3], 10, 16)
	setU2(posBuf, uint16(pv))
	body = append(body, posBuf...)
	for _, tok := range args[4:] {
		key, ok := lookupValKey(strings.TrimPrefix(tok, "CFG-"))
		if !ok {
			return nil
		}
		idBuf := make([]byte, 4)
		setU4(idBuf, key.ID)
		body = append(body, idBuf...)
	}
	return finishFrame(cfgClass, msgIDValGet, body)
}

// genValdel builds a CFG-VALDEL frame: "CFG-VALDEL version layer
// transaction reserved key [key ...]".
func genValdel(args []string) []byte {
	if len(args) < 6 {
		return nil
	}
	body := make([]byte, 4, 4+4*(len(args)-5))
	for i := 0; i < 4; i++ {
		v, _ := strconv.ParseUint(args[1+i], 10, 8)
		body[i] = byte(v)
	}
	for _, tok := range args[5:] {
		key, ok := lookupValKey(strings.TrimPrefix(tok, "CFG-"))
		if !ok {
			return nil
		}
		idBuf := make([]byte, 4)
		setU4(idBuf, key.ID)
		body = append(body, idBuf...)
	}
	return finishFrame(cfgClass, msgIDValDel, body)
}

// finishFrame wraps a message body with the sync/class/id/length header
// and a trailing Fletcher-8 checksum, returning the complete frame.
func finishFrame(class, id uint8, body []byte) []byte {
	frame := make([]byte, 6+len(body)+2)
	frame[0], frame[1] = sync1, sync2
	frame[2], frame[3] = class, id
	setU2(frame[4:], uint16(len(body)))
	copy(frame[6:], body)
	setChecksum(frame, len(frame))
	return frame
}

// GenUbx builds a checksummed UBX frame from a textual command of the
// form "CFG-<NAME> arg arg ...", writing it into buff and returning the
// number of bytes written, or 0 if the command is malformed or unknown
// (§4.8).
func GenUbx(msg string, buff []byte) int {
	args := strings.Fields(msg)
	if len(args) < 1 || !strings.HasPrefix(strings.ToUpper(args[0]), "CFG-") {
		return 0
	}
	name := strings.ToUpper(args[0][4:])

	var frame []byte
	switch name {
	case "VALSET":
		frame = genValset(args)
	case "VALGET":
		frame = genValget(args)
	case "VALDEL":
		frame = genValdel(args)
	default:
		e, ok := lookupCfg(name)
		if !ok {
			return 0
		}
		frame = genFixed(e, args)
	}
	if frame == nil || len(frame) > len(buff) {
		return 0
	}
	return copy(buff, frame)
}
