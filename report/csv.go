package report

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/sartorproj/golinfit/regression"
)

// bandHeader names the columns written by WriteBandCSV.
const bandHeader = "x,fitted,conf_lower,conf_upper,pred_lower,pred_upper\n"

// SaveBandCSV writes band to filename as CSV for external plotting.
func SaveBandCSV(band *regression.Band, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteBandCSV(file, band); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// WriteBandCSV writes one row per band point.
func WriteBandCSV(w io.Writer, band *regression.Band) error {
	writer := bufio.NewWriter(w)

	if _, err := writer.WriteString(bandHeader); err != nil {
		return err
	}

	buf := make([]byte, 0, 128)
	for _, p := range band.Points {
		buf = buf[:0]
		for i, v := range []float64{
			p.X, p.Fitted,
			p.Confidence.Lower, p.Confidence.Upper,
			p.Prediction.Lower, p.Prediction.Upper,
		} {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v, 'f', -1, 64)
		}
		buf = append(buf, '\n')

		if _, err := writer.Write(buf); err != nil {
			return err
		}
	}

	return writer.Flush()
}
