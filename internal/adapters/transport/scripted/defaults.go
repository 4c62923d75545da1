package scripted

const showModule5 = `Mod  Ports  Module-Type                         Model              Status
---  -----  ----------------------------------- ------------------ ----------
5    48     1/10 Gbps Ethernet Module           F8-A1234-48        ok

Mod  Sw              Hw
---  --------------  ------
5    10.10(3)        1.0


Mod  MAC-Address(es)                         Serial-Num
---  --------------------------------------  ----------
5    00-00-00-2d-bc-a0 to 00-00-00-2d-bc-d3  ABCD123EFG

Mod  Online Diag Status
---  ------------------
5    Pass

Chassis Ejector Support: Enabled
Ejector Status:
Left ejector CLOSE, Right ejector CLOSE, Module HW does support ejector based shutdown.`

const showModule5Uptime = `------ Module 5 -----
Module Start Time:    Thu Apr  2 14:40:07 2015
Up Time:             45 days, 19 hours, 35 minutes, 45 seconds`

const showInterface = `Ethernet1/4 is up
  Last link flapped 1d03h
  30 seconds input rate 730310680 bits/sec, 91288835 bytes/sec, 72677 packets/sec
  30 seconds output rate 505273896 bits/sec, 63159237 bytes/sec, 58752 packets/sec
    input rate 553.84 Mbps, 57.78 Kpps; output rate 495.41 Mbps, 56.99 Kpps
    0 input with dribble  117824 input discard(includes ACL drops)
    0 output errors  0 collision  0 deferred  0 late collision
  229 interface resets`

const showInterfaceTransceiver = `  Rx Power       -8.84 dBm       1.99 dBm  -13.97 dBm   -1.00 dBm     -9.91 dBm`

// DefaultScript reproduces the reference NX-OS lab outputs: module 5 online,
// Ethernet1/4 flapping with low receive light.
func DefaultScript() Script {
	script := Script{
		Banner: "Cisco Nexus Operating System (NX-OS) Software\r\n",
		Fixtures: []Fixture{
			{Match: `^show module uptime`, Output: showModule5Uptime},
			{Match: `^show module 5$`, Output: showModule5},
			{Match: `^show interface eth \S+ transceiver`, Output: showInterfaceTransceiver},
			{Match: `^show interface eth \S+$`, Output: showInterface},
		},
	}
	if err := script.compile(); err != nil {
		panic(err)
	}

	return script
}
