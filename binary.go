package supernovas

import (
	"encoding/binary"
	"fmt"
	"time"
)

//Encoded length of a JulianDate: the day then the time of day in nanoseconds,
//both as little endian int64
const encodedLen = 16

func (j JulianDate) MarshalBinary() ([]byte, error) {
	buf := make([]byte, encodedLen)
	binary.LittleEndian.PutUint64(buf[:8], uint64(j.day))
	binary.LittleEndian.PutUint64(buf[8:], uint64(j.timeOfDay))
	return buf, nil
}

//UnmarshalBinary decodes data written by MarshalBinary.
//A time of day outside [0, 24h) is rejected, not normalized.
func (j *JulianDate) UnmarshalBinary(data []byte) error {
	if len(data) != encodedLen {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidEncoding, len(data), encodedLen)
	}
	day := int64(binary.LittleEndian.Uint64(data[:8]))
	tod := time.Duration(binary.LittleEndian.Uint64(data[8:]))
	if tod < 0 || tod >= Day {
		return fmt.Errorf("%w: time of day %s", ErrInvalidEncoding, tod)
	}
	*j = JulianDate{day: day, timeOfDay: tod}
	return nil
}
