package console

// Static texts shown by the console. hashesText must stay in step with
// challenge.InterceptedHashes.

const readmeText = `Welcome to Mission Exploit CTF!

Your mission: Decode intercepted MD5 hashes to find
critical intelligence.

Commands to try:
1. ls - list files
2. cat [filename] - read files
3. missionexploit - access hash database
4. hint - get assistance (limited)
5. hash [text] - test MD5 generation
6. submit [text] - validate solution

Available files:
- intel.txt - Mission briefing
- methods.txt - Analysis techniques
- hashes.txt - Intercepted hash database

Start with: missionexploit, then check hashes.txt!`

const intelText = `INTELLIGENCE BRIEFING
=====================

SITUATION:
Intercepted enemy communications containing suspicious
MD5 hashes. One contains critical intelligence.

OBJECTIVE:
• Analyze intercepted hashes (see hashes.txt)
• Decode to obtain plaintext information
• Submit decoded intelligence for verification

NOTE:
Standard hash cracking methods insufficient.
Advanced cryptographic analysis required.

Classification: TOP SECRET`

const methodsText = `ANALYSIS METHODS
================

STANDARD WORKFLOW:
1. Access hash database via missionexploit
2. Obtain intercepted hashes from hashes.txt
3. Apply cryptographic analysis techniques
4. Test potential solutions
5. Submit decoded plaintext for validation

AVAILABLE TOOLS:
• missionexploit - access hash database
• hint - limited assistance available
• hash [text] - MD5 testing utility
• submit [text] - solution validation

NOTE: Multiple hashes provided. Only one is valid.
Use appropriate cryptographic methods to decode.`

const hashesText = `INTERCEPTED HASH DATABASE
=========================

Intelligence has intercepted 5 MD5 hashes from
enemy communications. One of them is correct.

INTERCEPTED HASHES:
------------------
Hash-Alpha: de73807b41656e73eb3938c56872167d
Hash-Beta:  9fda2b69d18ca58393fd0c6c63fa6c9b
Hash-Gamma: 633d5b9956e790957a51f32f480d822b
Hash-Delta: 2ce9906047c7286fd9ba7d6cdcd3e21b
Hash-Echo:  458f27e0d23c8113c52ab652dff24e6e

MISSION: Decode these hashes to plain text and
submit the correct one for validation.`

const bashHistory = `missionexploit
cat hashes.txt
hash MEETING AT LIBRARY
submit BY THE MAIN GATE`

var hints = []string{
	"H1: Check hashes.txt for intercepted data - analyze all 5 hashes.",
	"H2: Each hash = MD5(XOR(plaintext, key)). XOR key is 77.",
	"H3: Target location is a short meeting place phrase.",
	"H4: Use XOR decoder online: input hash data XORed with 77, find readable text.",
}

const unameText = "Linux mission-exploit 2.6.32-generic #1 SMP x86_64 GNU/Linux"
