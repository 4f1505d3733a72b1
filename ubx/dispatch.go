package ubx

// dispatch routes a checksum-verified frame to the decoder for its
// (class,id) 16-bit type. Unknown types are silently accepted (§4.3),
// preserving stream continuity.
func (d *Decoder) dispatch(ctype int) DecodeResult {
	switch ctype {
	case msgRxmRaw:
		return d.decodeRxmRaw()
	case msgRxmRawx:
		return d.decodeRxmRawx()
	case msgRxmSfrb:
		return d.decodeRxmSfrb()
	case msgRxmSfrbx:
		return d.decodeRxmSfrbx()
	case msgNavSol:
		return d.decodeNavSol()
	case msgNavTime:
		return d.decodeNavTime()
	case msgTrkMeas:
		if !d.EnableUndocumented {
			return DecodeResult{}
		}
		return d.decodeTrkMeas()
	case msgTrkD5:
		if !d.EnableUndocumented {
			return DecodeResult{}
		}
		return d.decodeTrkD5()
	case msgTrkSfrbx:
		if !d.EnableUndocumented {
			return DecodeResult{}
		}
		return d.decodeTrkSfrbx()
	}
	return DecodeResult{}
}
