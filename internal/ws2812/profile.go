//go:build !slow

package ws2812

// Profile names the compiled timing profile.
const Profile = "normal"

// Tick period is 333ns. TH+TL must be 650-1850ns.
func (d *Driver[T, P]) writeBit(one bool) {
	if one {
		d.wait()
		d.high() // T1H 550-850ns
		d.wait()
		d.wait()
		d.low() // T1L 450-750ns
		d.wait()
		return
	}
	d.wait()
	d.high() // T0H 200-500ns
	d.wait()
	d.low() // T0L 650-950ns
	d.wait()
	d.wait()
}
