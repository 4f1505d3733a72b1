package ubx

import "io"

// checksum verifies the Fletcher-8 pair trailing a frame of length flen in
// d.buff: ck_a/ck_b accumulate over bytes [2, flen-2) and must match the
// two bytes at [flen-2, flen).
func checksum(buff []byte, flen int) bool {
	var cka, ckb uint8
	for i := 2; i < flen-2; i++ {
		cka += buff[i]
		ckb += cka
	}
	return cka == buff[flen-2] && ckb == buff[flen-1]
}

func setChecksum(buff []byte, flen int) {
	var cka, ckb uint8
	for i := 2; i < flen-2; i++ {
		cka += buff[i]
		ckb += cka
	}
	buff[flen-2] = cka
	buff[flen-1] = ckb
}

// sync slides the last two accumulated bytes and reports whether they now
// equal the sync pattern 0xB5 0x62.
func sync(buff []byte, b byte) bool {
	buff[0] = buff[1]
	buff[1] = b
	return buff[0] == sync1 && buff[1] == sync2
}

// InputByte feeds one stream byte into the frame synchronizer, returning
// the wire-compatible status code (§6): -1 error, 0 no message, 1
// observation, 2 ephemeris, 3 SBAS message, 9 ion/UTC parameter.
func (d *Decoder) InputByte(b byte) int {
	if d.nbyte == 0 {
		if !sync(d.buff[:], b) {
			return 0
		}
		d.nbyte = 2
		return 0
	}
	d.buff[d.nbyte] = b
	d.nbyte++

	if d.nbyte == 6 {
		d.flen = int(U2L(d.buff[4:6])) + 8
		if d.flen > MAXRAWLEN {
			Trace(2, "ubx length error: len=%d\n", d.flen)
			d.nbyte = 0
			return -1
		}
	}
	if d.nbyte < 6 || d.nbyte < d.flen {
		return 0
	}
	d.nbyte = 0
	return d.decodeFrame().code()
}

// InputFile behaves like InputByte but pulls bytes from r, skipping up to
// 4096 bytes while searching for sync and returning -2 on end of stream.
func (d *Decoder) InputFile(r io.Reader) int {
	var c [1]byte
	if d.nbyte == 0 {
		for i := 0; ; i++ {
			if _, err := r.Read(c[:]); err != nil {
				return -2
			}
			if sync(d.buff[:], c[0]) {
				break
			}
			if i >= 4096 {
				return 0
			}
		}
	}
	if n, _ := r.Read(d.buff[2:6]); n < 4 {
		return -2
	}
	d.nbyte = 6

	d.flen = int(U2L(d.buff[4:6])) + 8
	if d.flen > MAXRAWLEN {
		Trace(2, "ubx length error: len=%d\n", d.flen)
		d.nbyte = 0
		return -1
	}
	if n, _ := r.Read(d.buff[6:d.flen]); n < d.flen-6 {
		return -2
	}
	d.nbyte = 0
	return d.decodeFrame().code()
}

// decodeFrame validates the checksum of the frame currently held in
// d.buff[:d.flen] and dispatches it to the handler for its (class,id).
func (d *Decoder) decodeFrame() DecodeResult {
	ctype := int(U1(d.buff[2:3]))<<8 | int(U1(d.buff[3:4]))

	Trace(3, "decode: type=%04x len=%d\n", ctype, d.flen)

	if !checksum(d.buff[:], d.flen) {
		Trace(2, "checksum error: type=%04x len=%d\n", ctype, d.flen)
		return DecodeResult{Kind: KindError}
	}
	return d.dispatch(ctype)
}
