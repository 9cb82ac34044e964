// SPDX-License-Identifier: EPL-2.0

// Package sink consumes a decode stream the way an audio output
// device would and lands the PCM somewhere useful instead of a DAC.
//
// Its only sink today is RIFF/WAVE via github.com/go-audio/wav:
//
//	f, _ := os.Open("input.mp3")
//	defer f.Close()
//
//	s, err := stream.New(f, gomp3.New(), nil)
//	if err != nil {
//	    // handle error
//	}
//	defer s.Close()
//
//	out, _ := os.Create("output.wav")
//	defer out.Close()
//	err = sink.WriteWAV(out, s)
//
// WriteWAV doubles as a reference consumer of the GetBuffer protocol:
// one pull per frame, play (write) every returned buffer, stop on
// Done, surface Error.
package sink
