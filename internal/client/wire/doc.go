// Package wire encodes nested attachment and detail lists into the XML form
// field the backend expects (XML_FILE_DATA, XML_DETAIL_DATA).
//
// Every list travels inside a fixed envelope with one DATA element per row
// and upper-snake-case child tags:
//
//	<ROOT>
//	  <DATA>
//	    <IMG_URL>https://cdn.example/E/a.jpg</IMG_URL>
//	    <SORT>1</SORT>
//	  </DATA>
//	</ROOT>
//
// An empty list encodes as <ROOT></ROOT>.
package wire
