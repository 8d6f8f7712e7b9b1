package fp

// u256ToDecimal renders x in decimal via repeated long division by 10^9
// over a base-2^32 digit array, avoiding a big.Int import for what is
// otherwise a pure fixed-width integer type.
func u256ToDecimal(x U256) string {
	if x.IsZero() {
		return "0"
	}

	// words[0] is least significant; 8 base-2^32 digits cover 256 bits.
	var words [8]uint32
	for i := 0; i < Limbs; i++ {
		words[2*i] = uint32(x.L[i])
		words[2*i+1] = uint32(x.L[i] >> 32)
	}

	const chunkBase = 1000000000 // 10^9
	var chunks []uint32
	for {
		zero := true
		for _, w := range words {
			if w != 0 {
				zero = false
				break
			}
		}
		if zero {
			break
		}
		var rem uint64
		for i := len(words) - 1; i >= 0; i-- {
			cur := rem<<32 | uint64(words[i])
			words[i] = uint32(cur / chunkBase)
			rem = cur % chunkBase
		}
		chunks = append(chunks, uint32(rem))
	}

	out := make([]byte, 0, len(chunks)*9)
	for i := len(chunks) - 1; i >= 0; i-- {
		s := formatUint32(chunks[i])
		if i == len(chunks)-1 {
			out = append(out, s...)
			continue
		}
		for j := len(s); j < 9; j++ {
			out = append(out, '0')
		}
		out = append(out, s...)
	}
	return string(out)
}

func formatUint32(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
