// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swch

import "code.hybscloud.com/atomix"

// Serial identifies a group. Sender and Receiver handles built by the same
// call, and all their clones, report the same serial.
type Serial = uint32

var groups atomix.Uint32

func nextSerial() Serial {
	return groups.Add(1)
}
