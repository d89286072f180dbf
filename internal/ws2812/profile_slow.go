//go:build slow

package ws2812

// Profile names the compiled timing profile.
const Profile = "slow"

// For targets where a pin write takes a good part of a tick. A zero is high
// for as long as two back to back pin writes take.
func (d *Driver[T, P]) writeBit(one bool) {
	if one {
		d.wait()
		d.high()
		d.wait()
		d.wait()
		d.low()
		return
	}
	d.wait()
	d.high()
	d.low()
	d.wait()
	d.wait()
}
